package main

// Version is the versync CLI's own version.
var Version = "1.0.0"
