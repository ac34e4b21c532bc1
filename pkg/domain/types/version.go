package types

// Version is the iconpack version, overridden at link time with -ldflags
var Version = "dev"
