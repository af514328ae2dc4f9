package main

import (
	"fmt"
	"runtime"

	"github.com/morrowtools/esm-translator-go/common/i18n"
	"github.com/morrowtools/esm-translator-go/constant"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: i18n.I18nMsg.App.VersionCmdShort,
	Long:  i18n.I18nMsg.App.VersionCmdLong,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s\n", i18n.I18nMsg.App.VersionTitle)
		fmt.Printf("%s: %s(%s)\n", i18n.I18nMsg.App.VersionLabel, constant.Version, constant.BuildTime)
		fmt.Printf("%s: %s\n", i18n.I18nMsg.App.GoVersionLabel, runtime.Version())
		fmt.Printf("%s: %s/%s\n", i18n.I18nMsg.App.PlatformLabel, runtime.GOOS, runtime.GOARCH)
	},
}

func initVersionCmd() {
	rootCmd.AddCommand(versionCmd)
}
