package main

// VERSION_NUMBER is rewritten by bumpversion itself on every release.
const VERSION_NUMBER = "0000.0001.000"
