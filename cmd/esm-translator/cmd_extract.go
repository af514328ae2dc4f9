package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/morrowtools/esm-translator-go/common/file"
	"github.com/morrowtools/esm-translator-go/common/i18n"
	"github.com/morrowtools/esm-translator-go/csvio"
	"github.com/morrowtools/esm-translator-go/esm"
	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var (
	extractOut         string
	extractTypes       string
	extractInteractive bool
)

func initExtractCmd() {
	extractCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Extract.Use,
		Short: i18n.I18nMsg.Extract.Short,
		Long:  i18n.I18nMsg.Extract.Long,
		Args:  cobra.ExactArgs(1),
		Run:   runExtract,
	}

	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "strings.csv", i18n.I18nMsg.Common.FlagOut)
	extractCmd.Flags().StringVarP(&extractTypes, "types", "t", "", i18n.I18nMsg.Extract.FlagTypes)
	extractCmd.Flags().BoolVarP(&extractInteractive, "interactive", "i", false, i18n.I18nMsg.Extract.FlagInteractive)

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", elapsed)
	}()
	pluginPath := args[0]

	filter, err := resolveTypeFilter()
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Extract.SelectionCancelled, err)
	}

	fmt.Printf(i18n.I18nMsg.Extract.Extracting+"\n", pluginPath, extractOut)

	source := openSource(pluginPath)
	defer source.Close()

	outFile, err := os.Create(extractOut)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToCreateFile, err)
	}
	defer outFile.Close()

	var rowSink io.Writer = outFile
	var xzOut *xz.Writer
	if strings.EqualFold(filepath.Ext(extractOut), ".xz") {
		xzOut, err = xz.NewWriter(outFile)
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToCreateFile, err)
		}
		rowSink = xzOut
	}

	rows := csvio.NewWriter(rowSink)

	progress, callback := newScanBar(source.Size(), i18n.I18nMsg.Extract.ScanProgressName)

	stats, err := esm.Extract(source, rows, filter, callback)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Extract.ErrorFailedToExtract, err)
	}
	if err := rows.Flush(); err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToWriteFile, err)
	}
	if xzOut != nil {
		if err := xzOut.Close(); err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToWriteFile, err)
		}
	}

	if progress != nil {
		progress.Wait()
	}

	fmt.Printf(i18n.I18nMsg.Extract.ExtractionCompleted+"\n", stats.Strings, stats.Records)
}

// resolveTypeFilter turns the --types flag, or the interactive selector,
// into a record-tag filter. nil means no filtering.
func resolveTypeFilter() (map[string]bool, error) {
	if extractTypes != "" {
		filter := make(map[string]bool)
		for _, tag := range strings.Split(extractTypes, ",") {
			filter[strings.TrimSpace(tag)] = true
		}
		return filter, nil
	}
	if !extractInteractive {
		return nil, nil
	}

	prompt := &survey.MultiSelect{
		Message:  i18n.I18nMsg.Extract.InteractiveSelection,
		Options:  esm.RecordTypes(),
		PageSize: 15,
	}

	var selected []string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf(i18n.I18nMsg.Extract.NoTypesSelected)
	}

	filter := make(map[string]bool, len(selected))
	for _, tag := range selected {
		filter[tag] = true
	}
	return filter, nil
}

// openSource opens a plugin path or URL, exiting on failure.
func openSource(path string) *file.Source {
	file.SetHTTPClientTimeout(300 * time.Second)
	source, err := file.Open(path)
	if err != nil {
		log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToOpen, err)
	}
	return source
}

// newScanBar builds a progress bar over container bytes consumed. When
// the source size is unknown there is nothing to render, and both
// returns are nil.
func newScanBar(total int64, name string) (*mpb.Progress, esm.ProgressFunc) {
	if total <= 0 {
		return nil, nil
	}

	progress := mpb.New(mpb.WithWidth(60))
	bar := progress.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(name, decor.WCSyncSpaceR),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}, decor.WCSyncSpace),
		),
	)

	callback := func(read int64) {
		if delta := read - bar.Current(); delta > 0 {
			bar.IncrBy(int(delta))
		}
	}
	return progress, callback
}
