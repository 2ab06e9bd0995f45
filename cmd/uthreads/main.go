// Command uthreads runs the conformance scenarios from spec.md §8 against
// the internal/uthread runtime, one cobra subcommand per scenario —
// grounded on the spf13/cobra root-command-plus-subcommands layout seen
// across the retrieval pack's manifests (e.g. scalytics-KafClaw, moby-moby).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krishkuchroo/xv6-finalproject/internal/uthread"
	"github.com/krishkuchroo/xv6-finalproject/workloads"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "uthreads",
		Short: "Run cooperative user-thread conformance scenarios",
	}
	root.AddCommand(
		newBasicJoinCmd(),
		newCounterCmd(),
		newProducerConsumerSemCmd(),
		newProducerConsumerChanCmd(),
		newReaderWriterCmd(),
	)
	return root
}

func newRuntime() *uthread.Runtime {
	return uthread.New(uthread.DefaultConfig())
}

func newBasicJoinCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "basic-join",
		Short: "Create N threads, yield, join each and print its retval",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := workloads.BasicJoin(newRuntime(), n)
			if err != nil {
				return err
			}
			for i, tid := range res.Tids {
				fmt.Printf("joined tid=%d retval=%d\n", int(tid), res.Retvals[i])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "threads", 3, "number of threads to create")
	return cmd
}

func newCounterCmd() *cobra.Command {
	var n int
	var protected bool
	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Run the shared-counter race, with or without a mutex",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := newRuntime()
			var got int
			var err error
			if protected {
				got, err = workloads.CounterMutex(rt, n)
			} else {
				got, err = workloads.CounterRace(rt, n)
			}
			if err != nil {
				return err
			}
			want := n * 1000
			fmt.Printf("final=%d expected=%d match=%t\n", got, want, got == want)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "threads", 3, "number of incrementing threads")
	cmd.Flags().BoolVar(&protected, "mutex", false, "guard the critical section with a mutex")
	return cmd
}

func newProducerConsumerSemCmd() *cobra.Command {
	var producers, consumers int
	cmd := &cobra.Command{
		Use:   "producer-consumer-sem",
		Short: "Bounded-buffer producer/consumer using semaphores",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := workloads.ProducerConsumerSem(newRuntime(), producers, consumers)
			if err != nil {
				return err
			}
			fmt.Printf("produced=%d consumed=%d match=%t\n", res.TotalProduced, res.TotalConsumed, res.TotalProduced == res.TotalConsumed)
			return nil
		},
	}
	cmd.Flags().IntVar(&producers, "producers", 3, "number of producer threads")
	cmd.Flags().IntVar(&consumers, "consumers", 2, "number of consumer threads")
	return cmd
}

func newProducerConsumerChanCmd() *cobra.Command {
	var producers, consumers, capacity int
	cmd := &cobra.Command{
		Use:   "producer-consumer-chan",
		Short: "Producer/consumer over a bounded channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := workloads.ProducerConsumerChan(newRuntime(), producers, consumers, capacity)
			if err != nil {
				return err
			}
			fmt.Printf("produced=%d consumed=%d match=%t\n", res.TotalProduced, res.TotalConsumed, res.TotalProduced == res.TotalConsumed)
			return nil
		},
	}
	cmd.Flags().IntVar(&producers, "producers", 3, "number of producer threads")
	cmd.Flags().IntVar(&consumers, "consumers", 2, "number of consumer threads")
	cmd.Flags().IntVar(&capacity, "capacity", 5, "channel capacity")
	return cmd
}

func newReaderWriterCmd() *cobra.Command {
	var readers, writers int
	cmd := &cobra.Command{
		Use:   "reader-writer",
		Short: "Writer-priority reader-writer lock over a shared counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := workloads.ReaderWriter(newRuntime(), readers, writers)
			if err != nil {
				return err
			}
			want := writers * 3
			fmt.Printf("final=%d expected=%d match=%t\n", res.Final, want, res.Final == want)
			return nil
		},
	}
	cmd.Flags().IntVar(&readers, "readers", 3, "number of reader threads")
	cmd.Flags().IntVar(&writers, "writers", 2, "number of writer threads")
	return cmd
}
