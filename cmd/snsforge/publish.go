package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	cfgpkg "snsforge/internal/config"
	"snsforge/internal/content"
	"snsforge/internal/paths"
	"snsforge/internal/report"
	"snsforge/internal/storage"
)

const (
	mp3ContentType  = "audio/mpeg"
	htmlContentType = "text/html; charset=utf-8"
	jsonContentType = "application/json"
)

type uploader interface {
	UploadFile(ctx context.Context, key, localPath, contentType string) error
	UploadBytes(ctx context.Context, key string, data []byte, contentType string) error
	KeyForProject(project string, parts ...string) string
}

var newUploader = func(ctx context.Context, bucket, prefix, region string) (uploader, error) {
	return storage.New(ctx, bucket, prefix, region)
}

// snsforge publish
func cmdPublish(args []string) error {
	var cf commonFlags
	var bucket, prefix, region stringFlag
	var includeAudio boolFlag

	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addCommonFlags(fs, &cf)
	fs.Var(&bucket, "bucket", "S3 bucket name (required in prod)")
	fs.Var(&prefix, "prefix", "S3 key prefix")
	fs.Var(&region, "region", "AWS region (defaults from env)")
	fs.Var(&includeAudio, "include-audio", "Also upload generated MP3s")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	setupLogger(cf.logLevel)

	cfg, err := loadConfig(cf, func(ov *cfgpkg.Overrides) {
		if bucket.set {
			ov.S3Bucket = &bucket.v
		}
		if prefix.set {
			ov.S3Prefix = &prefix.v
		}
		if region.set {
			ov.Region = &region.v
		}
	})
	if err != nil {
		return err
	}
	if err := cfgpkg.ValidateForPublish(cfg); err != nil {
		return err
	}

	builder := paths.New("")
	contentPath := builder.Content(cfg.Project)
	data, err := os.ReadFile(contentPath)
	if err != nil {
		return fmt.Errorf("missing local file %s: %w", contentPath, err)
	}
	result, err := content.ParseBatchResult(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", contentPath, err)
	}

	html, err := report.Render(cfg.Project, result)
	if err != nil {
		return err
	}
	reportPath := builder.Report(cfg.Project)
	if err := os.WriteFile(reportPath, html, 0o644); err != nil {
		return err
	}

	ctx := context.Background()
	up, err := newUploader(ctx, cfg.S3Bucket, cfg.S3Prefix, cfg.Region)
	if err != nil {
		return err
	}

	if err := up.UploadBytes(ctx, up.KeyForProject(cfg.Project, "content.json"), data, jsonContentType); err != nil {
		return err
	}
	if err := up.UploadBytes(ctx, up.KeyForProject(cfg.Project, "report.html"), html, htmlContentType); err != nil {
		return err
	}

	uploadedAudio := 0
	if includeAudio.v {
		for _, localPath := range result.AudioPaths {
			if localPath == "" {
				continue
			}
			key := up.KeyForProject(cfg.Project, "audio", filepath.Base(localPath))
			if err := up.UploadFile(ctx, key, localPath, mp3ContentType); err != nil {
				return fmt.Errorf("upload %s: %w", localPath, err)
			}
			uploadedAudio++
		}
	}

	slog.Info(
		"publish completed",
		"project", cfg.Project,
		"bucket", cfg.S3Bucket,
		"prefix", cfg.S3Prefix,
		"region", cfg.Region,
		"audioFiles", uploadedAudio,
	)
	return nil
}
