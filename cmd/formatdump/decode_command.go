package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zsiec/mediaformat/media"
)

func newDecodeCommand() *cobra.Command {
	var showConfig bool

	cmd := &cobra.Command{
		Use:   "decode <file>...",
		Short: "Decode wire-encoded formats and print their fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := decodeFiles(args)
			if err != nil {
				return err
			}
			for i, f := range formats {
				fmt.Fprintln(cmd.OutOrStdout(), args[i])
				if showConfig {
					renderConfig(cmd, f.MediaConfig())
				} else {
					renderFormat(cmd, f)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showConfig, "config", false, "print the decoder configuration mapping instead of raw fields")
	return cmd
}

// decodeFiles reads and decodes every file concurrently, preserving
// argument order in the result.
func decodeFiles(paths []string) ([]*media.Format, error) {
	formats := make([]*media.Format, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			f, err := media.Parse(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}
			slog.Debug("decoded format", "file", path, "format", f)
			formats[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return formats, nil
}

func renderFormat(cmd *cobra.Command, f *media.Format) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"id", orDash(f.ID)},
		{"container mime type", orDash(f.ContainerMimeType)},
		{"sample mime type", orDash(f.SampleMimeType)},
		{"codecs", orDash(f.Codecs)},
		{"bitrate", intOrDash(f.Bitrate)},
		{"max input size", intOrDash(f.MaxInputSize)},
		{"width", intOrDash(f.Width)},
		{"height", intOrDash(f.Height)},
		{"frame rate", floatOrDash(f.FrameRate)},
		{"rotation degrees", intOrDash(f.RotationDegrees)},
		{"pixel aspect ratio", floatOrDash(f.PixelWidthHeightRatio)},
		{"channel count", intOrDash(f.ChannelCount)},
		{"sample rate", intOrDash(f.SampleRate)},
		{"pcm encoding", intOrDash(f.PCMEncoding)},
		{"encoder delay", strconv.Itoa(f.EncoderDelay)},
		{"encoder padding", strconv.Itoa(f.EncoderPadding)},
		{"selection flags", selectionFlagNames(f.SelectionFlags)},
		{"language", orDash(f.Language)},
		{"subsample offset us", subsampleOffset(f.SubsampleOffsetUs)},
		{"init data buffers", strconv.Itoa(len(f.InitializationData))},
		{"drm schemes", drmSchemes(f)},
	})
	t.Render()
}

func renderConfig(cmd *cobra.Command, cfg media.MediaConfig) {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Key", "Value"})
	for _, k := range keys {
		v := cfg[k]
		if blob, ok := v.([]byte); ok {
			v = fmt.Sprintf("<%d bytes>", len(blob))
		}
		t.AppendRow(table.Row{k, v})
	}
	t.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func intOrDash(v int) string {
	if v == media.NoValue {
		return "-"
	}
	return strconv.Itoa(v)
}

func floatOrDash(v float64) string {
	if v == media.NoValue {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func subsampleOffset(v int64) string {
	if v == media.OffsetSampleRelative {
		return "sample-relative"
	}
	return strconv.FormatInt(v, 10)
}

func selectionFlagNames(flags int) string {
	if flags == 0 {
		return "-"
	}
	out := ""
	appendFlag := func(name string) {
		if out != "" {
			out += "|"
		}
		out += name
	}
	if flags&media.SelectionFlagDefault != 0 {
		appendFlag("default")
	}
	if flags&media.SelectionFlagForced != 0 {
		appendFlag("forced")
	}
	if flags&media.SelectionFlagAutoselect != 0 {
		appendFlag("autoselect")
	}
	return out
}

func drmSchemes(f *media.Format) string {
	if f.DRMInitData == nil {
		return "-"
	}
	out := ""
	for i := 0; i < f.DRMInitData.SchemeCount(); i++ {
		if out != "" {
			out += ", "
		}
		out += f.DRMInitData.Scheme(i).SchemeID.String()
	}
	return out
}
