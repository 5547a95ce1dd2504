package main

import (
	"github.com/Rakhulsr/go-catalog/app/cmd"
	"github.com/Rakhulsr/go-catalog/app/configs"
)

func main() {
	env := configs.LoadEnv()
	logger := configs.NewLogger(env)

	cmd.RunCli(env, logger)
}
