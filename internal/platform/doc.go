package platform

// Package platform contains OS integration glue: filesystem helpers for the
// per-user log directory that the terminal client writes to.
