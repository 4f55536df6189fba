package main

import (
	"fmt"
	"os"

	"github.com/csc840/tasking/cmd/internal"
	"github.com/csc840/tasking/pkg/tasking"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		versionFlag bool
		addrFlag    string
		taskFlag    string
	)
	flags := flag.NewFlagSet("taskserver", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the version and exits.")
	flags.StringVarP(&addrFlag, "addr", "a", tasking.DefaultAddr, "Address to listen on, as host:port.")
	flags.StringVarP(&taskFlag, "task", "t", tasking.DefaultTask, "Task served until the operator enters another one.")
	flags.Usage = func() {
		fmt.Printf(`
taskserver hands an operator chosen task string to each client that connects, as the body of a plain HTTP/1.1 response.
Clients are served one at a time. For every connection the request is printed and the operator is asked for the next task.
Pressing enter without typing anything keeps the current task.

USAGE:  taskserver [FLAGS]

FLAGS:
%s
NOTE:
    There are no timeouts. While the prompt is waiting, every other client waits too.
`, flags.FlagUsages())
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		fmt.Println(version)
		return
	}

	prompter := tasking.NewTerminalPrompter(os.Stdin, os.Stdout)
	if !prompter.Interactive() {
		internal.Warn("standard input is not a terminal, tasks will be read from it line by line")
	}
	srv, err := tasking.New(
		tasking.WithAddr(addrFlag),
		tasking.WithDefaultTask(taskFlag),
		tasking.WithPrompter(prompter),
	)
	if err != nil {
		internal.Fatal("Invalid server configuration: %v", err)
	}
	if err := srv.ListenAndServe(); err != nil {
		internal.Fatal("Server stopped: %v", err)
	}
}
