package config

// Package config provides user preferences backed by Fyne's preference store
// and the process environment read at startup.
