package common

// TernVersion is the current Tern version as a string.
const TernVersion string = "0.1.0"

// TernProjectFileName is the name for Tern project manifest files.
const TernProjectFileName string = "tern.toml"

// TernFileExt is the file extension for a Tern source file.
const TernFileExt string = ".tn"
