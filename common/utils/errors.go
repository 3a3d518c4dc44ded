package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

func Check(err error, msg string) {
	if err != nil {
		fmt.Print(chalk.Red)
		log.Print(msg, chalk.Reset)
		log.Panicln(err)
	}
}

func Assert(ok bool, msg string) {
	if !ok {
		fmt.Print(chalk.Red)
		log.Print(msg, chalk.Reset)
		log.Panic()
	}
}

// FailWith prints the cause chain of a startup error and exits.
// Not for use inside the simulation loop; tick-time failure is
// modeled as data, never as errors.
func FailWith(err error) {
	fmt.Print(chalk.Red)
	log.Print("FATAL: ", err.Error(), chalk.Reset)
	if cause := errors.Cause(err); cause != nil && cause != err {
		log.Print("cause: ", cause.Error())
	}
	os.Exit(1)
}

func WarnWith(err error, msg string) {
	fmt.Print(chalk.Yellow)
	log.Print(msg, ": ", err.Error(), chalk.Reset)
}
