// Package report renders a static HTML review page for a production run so
// an operator can inspect scripts, gate findings, and timing estimates
// without re-running the pipeline.
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"snsforge/internal/content"
)

type scriptView struct {
	Index     int
	IdeaTitle string
	Quality   content.Quality
	Findings  []content.Finding
	Preview   content.Preview
	Body      template.HTML
}

type reportView struct {
	Project string
	Ideas   []content.Idea
	Scripts []scriptView
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>台本レビュー: {{.Project}}</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; font-size: 14px; }
th { background: #f0f2f6; }
.finding-error { color: #b00020; }
.finding-warning { color: #8a6d00; }
.script { border-top: 2px solid #333; margin-top: 2rem; padding-top: 1rem; }
.body { background: #fafafa; border: 1px solid #e0e0e0; padding: 1rem; }
</style>
</head>
<body>
<h1>台本レビュー: {{.Project}}</h1>

<h2>企画一覧（{{len .Ideas}}本）</h2>
<table>
<tr><th>No</th><th>企画タイトル</th><th>要約</th><th>訴求タイプ</th></tr>
{{range .Ideas}}<tr><td>{{.No}}</td><td>{{.Title}}</td><td>{{.Summary}}</td><td>{{.AppealType}}</td></tr>
{{end}}</table>

{{range .Scripts}}
<div class="script">
<h2>台本 {{.Index}}: {{.IdeaTitle}}</h2>
<p>試行回数: {{.Quality.Attempts}} / エラー: {{.Quality.ErrorCount}}件 / 警告: {{.Quality.WarningCount}}件 /
ナレーション: {{.Preview.NarrationLength}}文字 / 推定{{printf "%.1f" .Preview.EstimatedDuration}}秒 / スライド{{.Preview.SegmentCount}}枚</p>
{{if .Findings}}<ul>
{{range .Findings}}<li class="finding-{{.Severity}}">[{{.Context}}] {{.Message}} — {{.Suggestion}}</li>
{{end}}</ul>{{end}}
{{if .Preview.TimeWarning}}<p class="finding-warning">{{.Preview.TimeWarning}}</p>{{end}}
{{range .Preview.SegmentWarnings}}<p class="finding-warning">{{.}}</p>
{{end}}
{{if .Preview.Segments}}<table>
<tr><th>No</th><th>秒数</th><th>ナレーション/テロップ</th><th>動画生成指示（日本語）</th><th>動画生成指示（英語）</th></tr>
{{range .Preview.Segments}}<tr><td>{{.No}}</td><td>{{.Duration}}</td><td>{{.Narration}}</td><td>{{.VisualJA}}</td><td>{{.VisualEN}}</td></tr>
{{end}}</table>{{end}}
<div class="body">{{.Body}}</div>
</div>
{{end}}
</body>
</html>
`))

// Render builds the HTML review report for one run. Each script's markdown
// body is converted with goldmark; the gate and preview are recomputed from
// the stored text so the report always reflects the latest attempt.
func Render(project string, result content.BatchResult) ([]byte, error) {
	view := reportView{Project: project, Ideas: result.Ideas}
	for i, script := range result.Scripts {
		var body bytes.Buffer
		if err := goldmark.Convert([]byte(script.FullText), &body); err != nil {
			return nil, fmt.Errorf("render script %d: %w", i+1, err)
		}
		lint := content.CheckScript(script.FullText, script.Narration)
		findings := append(append([]content.Finding{}, lint.Errors...), lint.Warnings...)
		view.Scripts = append(view.Scripts, scriptView{
			Index:     i + 1,
			IdeaTitle: script.IdeaTitle,
			Quality:   script.Quality,
			Findings:  findings,
			Preview:   content.PreviewFor(script),
			Body:      template.HTML(body.String()),
		})
	}

	var out bytes.Buffer
	if err := reportTemplate.Execute(&out, view); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
