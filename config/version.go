package config

// Version system:
// vMAJOR.MINOR.PATCH

const Version = "v1.0.0"
