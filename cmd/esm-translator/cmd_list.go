package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/morrowtools/esm-translator-go/common/i18n"
	"github.com/morrowtools/esm-translator-go/esm"
	"github.com/spf13/cobra"
)

var (
	listOut  string
	listJSON bool
	listSave bool
)

// recordTypeInfo is one line of the listing.
type recordTypeInfo struct {
	Tag          string `json:"tag"`
	Count        int    `json:"count"`
	Translatable bool   `json:"translatable"`
}

func initListCmd() {
	listCmd := &cobra.Command{
		Use:   i18n.I18nMsg.List.Use,
		Short: i18n.I18nMsg.List.Short,
		Long:  i18n.I18nMsg.List.Long,
		Args:  cobra.ExactArgs(1),
		Run:   runList,
	}

	listCmd.Flags().StringVarP(&listOut, "out", "o", "records_info.txt", i18n.I18nMsg.Common.FlagOut)
	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)
	listCmd.Flags().BoolVarP(&listSave, "save", "s", false, i18n.I18nMsg.List.FlagSave)

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		if !listJSON {
			fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", elapsed)
		}
	}()

	source := openSource(args[0])
	defer source.Close()

	counts := make(map[string]int)
	total := 0

	reader := esm.NewReader(source)
	if _, err := reader.Root(); err != nil {
		log.Fatalf(i18n.I18nMsg.List.ErrorFailedToList, err)
	}
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf(i18n.I18nMsg.List.ErrorFailedToList, err)
		}
		counts[rec.Tag]++
		total++
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	infos := make([]recordTypeInfo, 0, len(tags))
	for _, tag := range tags {
		_, translatable := esm.TranslatableSubRecords[tag]
		infos = append(infos, recordTypeInfo{Tag: tag, Count: counts[tag], Translatable: translatable})
	}

	var output string
	if listJSON {
		data, err := json.MarshalIndent(infos, "", "    ")
		if err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToMarshal, err)
		}
		output = string(data) + "\n"
	} else {
		var content strings.Builder
		content.WriteString(fmt.Sprintf(i18n.I18nMsg.List.TotalRecords+"\n", total))
		for _, info := range infos {
			if info.Translatable {
				content.WriteString(fmt.Sprintf("%s %6d  (%s)\n", info.Tag, info.Count, i18n.I18nMsg.List.TranslatableMark))
			} else {
				content.WriteString(fmt.Sprintf("%s %6d\n", info.Tag, info.Count))
			}
		}
		output = content.String()
	}

	fmt.Print(output)

	if listSave {
		if err := os.WriteFile(listOut, []byte(output), 0644); err != nil {
			log.Fatalf(i18n.I18nMsg.Common.ErrorFailedToWriteFile, err)
		}
		fmt.Printf(i18n.I18nMsg.List.ListSaved, listOut)
	}
}
