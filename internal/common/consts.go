package common

// UnknownStr is the shared fallback for String() methods on enum types.
const UnknownStr = "unknown"
