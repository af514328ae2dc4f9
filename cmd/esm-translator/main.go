package main

import (
	"os"

	"github.com/morrowtools/esm-translator-go/common/file"
	"github.com/morrowtools/esm-translator-go/common/i18n"
	"github.com/spf13/cobra"
)

var (
	rootCmd   *cobra.Command
	userAgent string
)

func init() {
	i18n.InitLanguage()

	rootCmd = &cobra.Command{
		Use:   "esm-translator",
		Short: i18n.I18nMsg.App.AppDescription,
		Long:  i18n.I18nMsg.App.AppLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if userAgent != "" {
				file.SetUserAgent(userAgent)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", i18n.I18nMsg.Common.FlagUserAgent)

	initExtractCmd()
	initInjectCmd()
	initListCmd()
	initVersionCmd()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
