package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/morrowtools/esm-translator-go/common/i18n"
	"github.com/morrowtools/esm-translator-go/csvio"
	"github.com/morrowtools/esm-translator-go/esm"
	"github.com/spf13/cobra"
)

var (
	injectCSV   string
	injectOut   string
	injectPatch bool
)

func initInjectCmd() {
	injectCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Inject.Use,
		Short: i18n.I18nMsg.Inject.Short,
		Long:  i18n.I18nMsg.Inject.Long,
		Args:  cobra.ExactArgs(1),
		Run:   runInject,
	}

	injectCmd.Flags().StringVarP(&injectCSV, "csv", "c", "", i18n.I18nMsg.Inject.FlagCSV)
	injectCmd.Flags().StringVarP(&injectOut, "out", "o", "", i18n.I18nMsg.Common.FlagOut)
	injectCmd.Flags().BoolVar(&injectPatch, "patch", false, i18n.I18nMsg.Inject.FlagPatch)
	injectCmd.MarkFlagRequired("csv")
	injectCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(injectCmd)
}

func runInject(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", elapsed)
	}()
	pluginPath := args[0]

	fmt.Printf(i18n.I18nMsg.Inject.Injecting+"\n", injectCSV, pluginPath, injectOut)

	csvSource := openSource(injectCSV)
	translations, err := csvio.LoadTranslations(csvSource)
	csvSource.Close()
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Inject.ErrorFailedToLoadCSV, err)
	}
	fmt.Printf(i18n.I18nMsg.Inject.TranslationsLoaded+"\n", len(translations))

	source := openSource(pluginPath)
	defer source.Close()

	outFile, err := os.Create(injectOut)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToCreateFile, err)
	}
	defer outFile.Close()

	progress, callback := newScanBar(source.Size(), i18n.I18nMsg.Inject.ScanProgressName)

	stats, err := esm.Inject(source, outFile, translations, callback)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Inject.ErrorFailedToInject, err)
	}

	if progress != nil {
		progress.Wait()
	}

	fmt.Printf(i18n.I18nMsg.Inject.InjectionCompleted+"\n", stats.Injected, stats.Records)
	if stats.Mismatches > 0 {
		fmt.Printf(i18n.I18nMsg.Inject.MismatchSummary+"\n", stats.Mismatches)
	}
}
