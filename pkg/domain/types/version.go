package types

// AppName is the command name
const AppName = "poetry-release"

// Version is the application version
const Version = "0.1.0"
