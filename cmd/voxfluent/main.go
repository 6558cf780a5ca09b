// SPDX-License-Identifier: EPL-2.0

// Command voxfluent speaks text with a prebuilt voice and saves it as WAV.
//
//	voxfluent -voice Puck -out hello.wav "Hello there"
//	echo "Hello" | voxfluent -play
//	voxfluent -payload speech.b64 -out speech.wav
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	voxfluent "github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/audio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/internal/config"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/internal/logger"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/internal/observe"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/playback"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/studio"
	"github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio/tts"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to the YAML configuration file (optional)")
	voiceID := flag.String("voice", "", "voice id (default: first voice of the catalogue)")
	outPath := flag.String("out", "", "where to write the WAV file (default: suggested clip name)")
	play := flag.Bool("play", false, "play the result on the default sound device")
	listVoices := flag.Bool("list-voices", false, "print the voice catalogue and exit")
	payloadPath := flag.String("payload", "", "transcode a base64 PCM payload file instead of synthesizing")
	pretty := flag.Bool("pretty", false, "human readable logs")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voxfluent: %v\n", err)
		return 1
	}

	logger.Init(string(cfg.LogLevel), *pretty)

	catalog, err := cfg.Catalog()
	if err != nil {
		log.Error().Err(err).Msg("invalid voice catalogue")
		return 1
	}

	if *listVoices {
		printVoices(os.Stdout, catalog)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *payloadPath != "" {
		if err := transcodeFile(ctx, *payloadPath, *outPath, *play, cfg); err != nil {
			log.Error().Err(err).Str("payload", *payloadPath).Msg("transcoding failed")
			return 1
		}
		return 0
	}

	text, err := readText(flag.Args(), os.Stdin, cfg.DefaultPrompt)
	if err != nil {
		log.Error().Err(err).Msg("reading text")
		return 1
	}

	synth, err := newRegistry(cfg).New(ctx, cfg.Provider.Name)
	if err != nil {
		log.Error().Err(err).Str("provider", cfg.Provider.Name).Msg("failed to build provider")
		return 1
	}

	st := studio.New(synth,
		studio.WithCatalog(catalog),
		studio.WithFormat(cfg.Audio.SampleRate, cfg.Audio.Channels),
		studio.WithLibraryDir(cfg.Library.Dir),
		studio.WithMetrics(observe.DefaultMetrics()),
	)
	defer st.Close()

	clip, err := st.Generate(ctx, text, *voiceID)
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		return 1
	}

	dst := *outPath
	if dst == "" {
		dst = clip.DownloadName()
	}
	if err := exportClip(clip, dst); err != nil {
		log.Error().Err(err).Str("out", dst).Msg("saving clip")
		return 1
	}

	fmt.Printf("%s\t%s\t%.2fs\n", dst, clip.Voice.Name, clip.Duration().Seconds())

	if *play {
		if err := playBuffer(ctx, clip.Buffer); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("playback failed")
			return 1
		}
	}

	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return cfg, config.Validate(cfg)
	}
	return config.Load(path)
}

func printVoices(w io.Writer, c *tts.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGENDER\tDESCRIPTION")
	for _, v := range c.Voices() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.ID, v.Gender, v.Description)
	}
	tw.Flush()
}

func transcodeFile(ctx context.Context, path, out string, play bool, cfg *config.Config) error {
	p, err := readPayload(path)
	if err != nil {
		return err
	}

	buf, data, err := voxfluent.Transcode(p, cfg.Audio.SampleRate, cfg.Audio.Channels)
	if err != nil {
		return err
	}

	if out == "" {
		out = "voxfluent.wav"
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	log.Info().Str("out", out).Int("frames", buf.Frames()).Dur("duration", buf.Duration()).Msg("payload transcoded")

	if play {
		return playBuffer(ctx, buf)
	}
	return nil
}

func exportClip(clip *studio.Clip, dst string) error {
	src, err := clip.Artifact().Open()
	if err != nil {
		return err
	}
	defer src.Close()

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func playBuffer(ctx context.Context, buf *audio.Buffer) error {
	out, err := playback.NewOto(buf.SampleRate(), buf.Channels())
	if err != nil {
		return err
	}
	defer out.Close()

	return out.Play(ctx, buf)
}
