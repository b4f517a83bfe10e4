package models

import (
	"encoding/binary"
	"io"
	"os"
)

type Config struct {
	// Format names the section table layout, see memtab.ParseFormat.
	Format    string
	BigEndian bool
	// Offset is the file offset of the first table record.
	Offset int64
	// Count limits the number of records decoded. Zero decodes until end of input.
	Count   int
	Color   bool
	Verbose bool

	Output io.Writer
}

func (c *Config) ByteOrder() binary.ByteOrder {
	if c.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (c *Config) Init() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
	if c.Format == "" {
		c.Format = "end"
	}
	return c
}
