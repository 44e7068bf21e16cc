package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

// snsforge all (optional convenience)
func cmdAll(args []string) error {
	// Accept a minimal set of flags and reuse subcommands where possible.
	var cf commonFlags
	var pick, voice stringFlag
	var rounds intFlag
	var overwrite, includeAudio boolFlag
	var bucket, prefix, region stringFlag

	fs := flag.NewFlagSet("all", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addCommonFlags(fs, &cf)
	fs.Var(&rounds, "rounds", "Number of 20-idea generation rounds")
	fs.Var(&pick, "pick", "Idea numbers to script (default all)")
	fs.Var(&voice, "voice", "TTS voice")
	fs.Var(&overwrite, "overwrite", "Allow overwriting existing outputs")
	fs.Var(&includeAudio, "include-audio", "Also upload generated MP3s")
	fs.Var(&bucket, "bucket", "S3 bucket name (required in prod)")
	fs.Var(&prefix, "prefix", "S3 key prefix")
	fs.Var(&region, "region", "AWS region (defaults from env)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	// Share parsed flags to individual steps and log progress.
	setupLogger(cf.logLevel)
	slog.Info("running all steps")
	common := []string{}
	if cf.project != "" {
		common = append(common, "--project", cf.project)
	}
	if cf.config != "" {
		common = append(common, "--config", cf.config)
	}

	ideasArgs := append([]string{}, common...)
	if rounds.set {
		ideasArgs = append(ideasArgs, "--rounds", fmt.Sprint(rounds.v))
	}
	if overwrite.set {
		ideasArgs = append(ideasArgs, "--overwrite", fmt.Sprint(overwrite.v))
	}
	if err := cmdIdeas(ideasArgs); err != nil {
		return err
	}

	scriptArgs := append([]string{}, common...)
	if pick.set {
		scriptArgs = append(scriptArgs, "--pick", pick.v)
	}
	if overwrite.set {
		scriptArgs = append(scriptArgs, "--overwrite", fmt.Sprint(overwrite.v))
	}
	if err := cmdScript(scriptArgs); err != nil {
		return err
	}

	audioArgs := append([]string{}, common...)
	if voice.set {
		audioArgs = append(audioArgs, "--voice", voice.v)
	}
	if err := cmdAudio(audioArgs); err != nil {
		return err
	}

	publishArgs := append([]string{}, common...)
	if bucket.set {
		publishArgs = append(publishArgs, "--bucket", bucket.v)
	}
	if prefix.set {
		publishArgs = append(publishArgs, "--prefix", prefix.v)
	}
	if region.set {
		publishArgs = append(publishArgs, "--region", region.v)
	}
	if includeAudio.set {
		publishArgs = append(publishArgs, "--include-audio", fmt.Sprint(includeAudio.v))
	}
	return cmdPublish(publishArgs)
}
