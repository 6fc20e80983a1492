package main

import (
	"fmt"
	"os"

	"CalcPong/core"
	"CalcPong/logger"
)

func main() {
	flags := core.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	conf, err := logger.ReadConfig("./")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Log.Init(conf)

	env, _ := flags.GetString("env")
	if env == "" {
		env = os.Getenv("PONG_ENV")
	}
	settings, err := core.ReadSettings("./properties", env, flags)
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.FatalErrMsg, err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := start(settings); err != nil {
		logger.Log.Error(fmt.Sprintf(logger.FatalErrMsg, err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
