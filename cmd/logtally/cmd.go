package main

import (
	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	// root command
	rootCmd := &cobra.Command{
		Use:           "logtally",
		Short:         "Fill attendance report templates from daily visit logs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.Init()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $LOGTALLY_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (default $LOGTALLY_LOG_LEVEL or info)")

	// command for showing the tallies of a log
	var tallyDate string
	tallyCmd := &cobra.Command{
		Use:   "tally [log]",
		Short: "Show the dates and per-program/per-slot counts of a log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Tally(args[0], tallyDate)
		},
	}
	tallyCmd.Flags().StringVar(&tallyDate, "date", "", "date to show (default earliest date in the log)")

	// command for filling the template for one date
	var fillDate, fillOut string
	fillCmd := &cobra.Command{
		Use:   "fill [log] [master]",
		Short: "Fill the master template for a single date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Fill(args[0], args[1], fillDate, fillOut)
		},
	}
	fillCmd.Flags().StringVar(&fillDate, "date", "", "date to fill (default earliest date in the log)")
	fillCmd.Flags().StringVarP(&fillOut, "output", "o", "", "output file, .csv, .xlsx or .html (default <prefix>_Report_<day>.csv)")

	// command for filling the template for a date range
	var rangeStart, rangeEnd, rangeOut string
	rangeCmd := &cobra.Command{
		Use:   "range [log] [master]",
		Short: "Fill the master template for every date of a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Range(args[0], args[1], rangeStart, rangeEnd, rangeOut)
		},
	}
	rangeCmd.Flags().StringVar(&rangeStart, "start", "", "first date, YYYY-MM-DD")
	rangeCmd.Flags().StringVar(&rangeEnd, "end", "", "last date, YYYY-MM-DD")
	rangeCmd.Flags().StringVarP(&rangeOut, "output", "o", "", "output file (default <prefix>_Report_<start>_to_<end>.csv)")
	_ = rangeCmd.MarkFlagRequired("start")
	_ = rangeCmd.MarkFlagRequired("end")

	// command for cutting the template down to a date range
	var filterStart, filterEnd, filterOut string
	filterCmd := &cobra.Command{
		Use:   "filter [master]",
		Short: "Keep only the label column and the day columns of a range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Filter(args[0], filterStart, filterEnd, filterOut)
		},
	}
	filterCmd.Flags().StringVar(&filterStart, "start", "", "first date, YYYY-MM-DD")
	filterCmd.Flags().StringVar(&filterEnd, "end", "", "last date, YYYY-MM-DD")
	filterCmd.Flags().StringVarP(&filterOut, "output", "o", "", "output file (default Master_RangeOnly_<start>_to_<end>.csv)")
	_ = filterCmd.MarkFlagRequired("start")
	_ = filterCmd.MarkFlagRequired("end")

	// add commands
	rootCmd.AddCommand(tallyCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(filterCmd)

	return rootCmd
}
