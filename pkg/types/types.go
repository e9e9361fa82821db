package types

// AnySlice alias for []interface{}
type AnySlice = []interface{}
