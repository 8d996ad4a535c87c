package types

import (
	abytes "github.com/finaswap/finatoken/types/bytes"
)

type HexBytes = abytes.HexBytes
