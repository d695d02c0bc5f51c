package config

import "github.com/namsral/flag"

type Config struct {
	BoardSize    int
	UseEyeFilter bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("tsumego", flag.ContinueOnError)
	fs.IntVar(&c.BoardSize, "board-size", 3, "board dimension; solving is practical only on small boards")
	fs.BoolVar(&c.UseEyeFilter, "eye-filter", true, "skip self-eye points when generating random moves")
	err := fs.Parse(args)
	return err
}

func DefaultConfig() Config {
	return Config{
		BoardSize:    3,
		UseEyeFilter: true,
	}
}
