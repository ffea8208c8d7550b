package main

// document is a generic top-level mapping, used where a command has to
// create a file without knowing the caller's record type.
type document map[string]any

func (document) Default() document { return document{} }
