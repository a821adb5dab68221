package config

//Version is filled at compile time with the git version of hostman
var Version = "v0.0.0-dev"

//ExactVersion is filled at compile time with the git revision of hostman
var ExactVersion = "undefined"
