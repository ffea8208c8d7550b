// Package fetchfile saves values to files and loads them back under one of
// three interchangeable formats: compact binary (MessagePack), structured text
// (YAML) and JSON.
//
// A type opts in by implementing [Persistable], which picks its default value
// and its active [Codec]:
//
//	type Config struct {
//		Setting1 int `msgpack:"setting1" yaml:"setting1" json:"setting1"`
//		Setting2 int `msgpack:"setting2" yaml:"setting2" json:"setting2"`
//	}
//
//	func (Config) Default() Config { return Config{Setting1: 0, Setting2: 5} }
//
//	func (Config) Codec() fetchfile.Codec[Config] { return fetchfile.Binary[Config]{} }
//
// [FetchOrDefault] either reads and decodes the file, or returns the default
// along with a flag reporting that the default was used:
//
//	config, usedDefault := fetchfile.FetchOrDefault[Config]("config.bin")
//	if usedDefault {
//		if err := fetchfile.Save("config.bin", config); err != nil {
//			return err
//		}
//	}
//
// Missing or corrupt files never produce an error from [FetchOrDefault] or
// [Load]. Failed saves always do.
package fetchfile
