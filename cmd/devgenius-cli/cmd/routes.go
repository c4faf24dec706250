package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/devgenius/devgenius/internal/server"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the registered route table",
	Run: func(cmd *cobra.Command, args []string) {
		s := server.New()
		s.RegisterRoutes()

		routes := s.E.Routes()
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path == routes[j].Path {
				return routes[i].Method < routes[j].Method
			}
			return routes[i].Path < routes[j].Path
		})

		for _, r := range routes {
			fmt.Printf("%-6s %s\n", r.Method, r.Path)
		}
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
