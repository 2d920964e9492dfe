package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jedib0t/go-pretty/table"
)

// FormatInfo describes one registered token for listings.
type FormatInfo struct {
	Token             string `json:"token"`
	Class             string `json:"class"`
	Implemented       bool   `json:"implemented"`
	Streaming         bool   `json:"streaming"`
	SeekableStreaming bool   `json:"seekable_streaming"`
	InMemory          bool   `json:"in_memory"`
}

// ListFormats returns stream formats first, then archive formats, each in
// declaration order.
func ListFormats() []FormatInfo {
	formats := make([]FormatInfo, 0, len(StreamFormats)+len(ArchiveFormats))
	for _, format := range StreamFormats {
		formats = append(formats, FormatInfo{
			Token:       format.Token(),
			Class:       format.Class().String(),
			Implemented: true,
		})
	}
	for _, format := range ArchiveFormats {
		capabilities := format.Capabilities()
		formats = append(formats, FormatInfo{
			Token:             format.Token(),
			Class:             format.Class().String(),
			Implemented:       format.IsImplemented(),
			Streaming:         capabilities.Streaming,
			SeekableStreaming: capabilities.SeekableStreaming,
			InMemory:          capabilities.InMemory,
		})
	}
	return formats
}

func HandleFormatList(pretty, asJSON bool) error {
	formats := ListFormats()
	switch {
	case asJSON:
		return WriteAsJSON(formats, os.Stdout, pretty)
	case pretty:
		WritePrettyFormatList(formats, os.Stdout)
		return nil
	default:
		return WriteFormatList(formats, os.Stdout)
	}
}

func WriteFormatList(formats []FormatInfo, output io.Writer) error {
	writer := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "token\tclass\timplemented\tstreaming\tseekable\tin_memory")
	for _, f := range formats {
		_, _ = fmt.Fprintf(writer, "%s\t%s\t%v\t%v\t%v\t%v\n",
			f.Token, f.Class, f.Implemented, f.Streaming, f.SeekableStreaming, f.InMemory)
	}
	return writer.Flush()
}

func WritePrettyFormatList(formats []FormatInfo, output io.Writer) {
	writer := table.NewWriter()
	writer.SetOutputMirror(output)
	defer writer.Render()
	writer.AppendHeader(table.Row{"#", "Token", "Class", "Implemented", "Streaming", "Seekable", "In memory"})
	for i, f := range formats {
		writer.AppendRow(table.Row{i, f.Token, f.Class, f.Implemented, f.Streaming, f.SeekableStreaming, f.InMemory})
	}
}

func WriteAsJSON(data interface{}, output io.Writer, pretty bool) error {
	var bytes []byte
	var err error
	if pretty {
		bytes, err = json.MarshalIndent(data, "", "    ")
	} else {
		bytes, err = json.Marshal(data)
	}
	if err != nil {
		return err
	}
	_, err = output.Write(bytes)
	return err
}
