package cli

func init() {
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newPipeCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
}
