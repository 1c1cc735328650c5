package internal

// Version is the application version reported by the --version flag.
const Version = "0.1.0"
