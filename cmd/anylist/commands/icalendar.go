package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func icalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icalendar",
		Short: "Control meal-plan calendar sync",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "enable",
			Short: "Turn on calendar sync and print the feed URL",
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := client()
				if err != nil {
					return err
				}
				info, err := c.EnableICalendar(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Println(info.URL)
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Turn off calendar sync",
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := client()
				if err != nil {
					return err
				}
				return c.DisableICalendar(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "url",
			Short: "Print the feed URL if sync is enabled",
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := client()
				if err != nil {
					return err
				}
				url, err := c.ICalendarURL(cmd.Context())
				if err != nil {
					return err
				}
				if url == "" {
					fmt.Println("calendar sync is disabled")
					return nil
				}
				fmt.Println(url)
				return nil
			},
		},
	)
	return cmd
}
