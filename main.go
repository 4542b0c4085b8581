package main

import (
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/taladar/dotnet-parser/cmd"
)

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	os.Exit(cmd.Execute())
}
