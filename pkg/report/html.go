package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/visionlab-dev/vision-report/pkg/core"
)

// Renderer turns a built Model into a single self-contained HTML document.
// All styling, behavior and media ride inside the output file; opening it
// needs nothing but a browser.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the report template. The template is a compile-time
// constant, so an error here indicates a broken build rather than bad
// input.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"statusClass": statusClass,
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

var (
	defaultRendererOnce sync.Once
	defaultRenderer     *Renderer
	defaultRendererErr  error
)

// DefaultRenderer returns the shared renderer, parsing the template on
// first use.
func DefaultRenderer() (*Renderer, error) {
	defaultRendererOnce.Do(func() {
		defaultRenderer, defaultRendererErr = NewRenderer()
	})
	return defaultRenderer, defaultRendererErr
}

// Render executes the template against the model.
func (r *Renderer) Render(m *Model) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, buildTemplateData(m)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func statusClass(s core.Status) string {
	return strings.ToLower(s.String())
}

// templateData wraps the model with presentation values the template
// should not have to compute itself.
type templateData struct {
	*Model
	PassPct     float64
	PieGradient template.CSS
	TagBars     []tagBarView
}

type tagBarView struct {
	Label string
	Count int64
	Pct   float64
}

func buildTemplateData(m *Model) templateData {
	data := templateData{Model: m}

	if m.TotalTests > 0 {
		data.PassPct = float64(m.PassCount) / float64(m.TotalTests) * 100
	}
	data.PieGradient = pieGradient(m)

	var maxTag int64
	for _, item := range m.Chart.TagDistribution {
		if item.Value > maxTag {
			maxTag = item.Value
		}
	}
	for _, item := range m.Chart.TagDistribution {
		bar := tagBarView{Label: item.Label, Count: item.Value}
		if maxTag > 0 {
			bar.Pct = float64(item.Value) / float64(maxTag) * 100
		}
		data.TagBars = append(data.TagBars, bar)
	}

	return data
}

// pieGradient builds the conic-gradient for the status donut. Segments
// follow the summary order produced by the builder; an empty report gets a
// neutral full circle.
func pieGradient(m *Model) template.CSS {
	var total int64
	for _, item := range m.Chart.StatusSummary {
		total += item.Value
	}
	if total == 0 {
		return template.CSS("conic-gradient(var(--border-color) 0% 100%)")
	}

	var segments []string
	var offset float64
	for _, item := range m.Chart.StatusSummary {
		pct := float64(item.Value) / float64(total) * 100
		segments = append(segments, fmt.Sprintf("%s %.2f%% %.2f%%", item.Color, offset, offset+pct))
		offset += pct
	}
	return template.CSS("conic-gradient(" + strings.Join(segments, ", ") + ")")
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        :root {
            --bg-primary: #ffffff;
            --bg-secondary: #f9fafb;
            --bg-tertiary: #f3f4f6;
            --text-primary: #111827;
            --text-secondary: rgb(75, 85, 99);
            --text-muted: rgb(107, 114, 128);
            --border-color: #e5e7eb;
            --success-color: #22c55e;
            --success-bg: rgba(34, 197, 94, 0.1);
            --danger-color: #ef4444;
            --danger-bg: rgba(239, 68, 68, 0.08);
            --warning-color: #eab308;
            --warning-bg: rgba(234, 179, 8, 0.1);
            --info-color: #06b6d4;
            --info-bg: rgba(6, 182, 212, 0.1);
            --accent: #6366f1;
        }

        * {
            box-sizing: border-box;
            margin: 0;
            padding: 0;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg-primary);
            color: var(--text-primary);
            line-height: 1.5;
        }

        /* Header */
        .header {
            background: var(--bg-secondary);
            border-bottom: 1px solid var(--border-color);
            padding: 16px 24px;
        }

        .header-top {
            display: flex;
            align-items: center;
            justify-content: space-between;
            margin-bottom: 16px;
        }

        .header-title {
            display: flex;
            flex-direction: column;
        }

        .header-title-main {
            font-size: 18px;
            font-weight: 600;
        }

        .header-title-sub {
            font-size: 12px;
            color: var(--text-secondary);
        }

        .generated-badge {
            padding: 6px 14px;
            background: var(--bg-primary);
            border: 1px solid var(--border-color);
            border-radius: 6px;
            font-size: 13px;
            color: var(--text-secondary);
        }

        /* Dashboard */
        .dashboard {
            display: flex;
            gap: 24px;
            flex-wrap: wrap;
            align-items: center;
        }

        .chart-container {
            display: flex;
            align-items: center;
            gap: 16px;
        }

        .pie-chart {
            width: 84px;
            height: 84px;
            border-radius: 50%;
            position: relative;
            background: {{.PieGradient}};
        }

        .pie-center {
            position: absolute;
            top: 50%;
            left: 50%;
            transform: translate(-50%, -50%);
            background: var(--bg-secondary);
            width: 52px;
            height: 52px;
            border-radius: 50%;
            display: flex;
            align-items: center;
            justify-content: center;
            font-size: 14px;
            font-weight: 600;
        }

        .chart-legend {
            display: flex;
            flex-direction: column;
            gap: 4px;
        }

        .legend-item {
            display: flex;
            align-items: center;
            gap: 8px;
            font-size: 13px;
        }

        .legend-dot {
            width: 10px;
            height: 10px;
            border-radius: 50%;
        }

        /* Tag distribution */
        .tag-card {
            background: var(--bg-primary);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            padding: 12px 16px;
            min-width: 220px;
            font-size: 13px;
        }

        .tag-card-title {
            font-weight: 600;
            margin-bottom: 8px;
            font-size: 12px;
            text-transform: uppercase;
            color: var(--text-muted);
        }

        .tag-row {
            display: flex;
            align-items: center;
            gap: 8px;
            margin-bottom: 4px;
        }

        .tag-label {
            min-width: 90px;
            white-space: nowrap;
            overflow: hidden;
            text-overflow: ellipsis;
        }

        .tag-bar {
            flex: 1;
            height: 6px;
            background: var(--bg-tertiary);
            border-radius: 3px;
            overflow: hidden;
        }

        .tag-fill {
            height: 100%;
            background: var(--accent);
            border-radius: 3px;
        }

        .tag-count {
            color: var(--text-muted);
            min-width: 20px;
            text-align: right;
        }

        /* System info */
        .env-card {
            background: var(--bg-primary);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            padding: 12px 16px;
            display: grid;
            grid-template-columns: repeat(2, 1fr);
            gap: 8px 24px;
            font-size: 13px;
        }

        .env-item {
            display: flex;
            gap: 8px;
        }

        .env-label {
            color: var(--text-muted);
            min-width: 100px;
        }

        .env-value {
            color: var(--text-primary);
            font-weight: 500;
        }

        /* Toolbar */
        .toolbar {
            display: flex;
            gap: 12px;
            padding: 12px 24px;
            border-bottom: 1px solid var(--border-color);
            background: var(--bg-secondary);
            position: sticky;
            top: 0;
            z-index: 20;
        }

        .search-input {
            flex: 1;
            max-width: 340px;
            padding: 8px 12px;
            border: 1px solid var(--border-color);
            border-radius: 6px;
            font-size: 13px;
            background: var(--bg-primary);
        }

        .search-input:focus {
            outline: none;
            border-color: var(--accent);
        }

        .filter-btn {
            padding: 4px 14px;
            border: 1px solid var(--border-color);
            border-radius: 16px;
            background: var(--bg-primary);
            font-size: 12px;
            cursor: pointer;
            transition: all 0.2s;
        }

        .filter-btn:hover {
            border-color: var(--accent);
        }

        .filter-btn.active {
            background: var(--accent);
            color: white;
            border-color: var(--accent);
        }

        .filter-btn.fail.active {
            background: var(--danger-color);
            border-color: var(--danger-color);
        }

        /* Test cards */
        .test-list {
            padding: 16px 24px;
            display: flex;
            flex-direction: column;
            gap: 12px;
        }

        .test-card {
            border: 1px solid var(--border-color);
            border-radius: 8px;
            background: var(--bg-primary);
            overflow: hidden;
        }

        .test-card.fail {
            background: linear-gradient(90deg, var(--danger-bg) 0%, var(--bg-primary) 40%);
        }

        .test-header {
            display: flex;
            align-items: center;
            gap: 12px;
            padding: 12px 16px;
            cursor: pointer;
        }

        .test-header:hover {
            background: var(--bg-secondary);
        }

        .status-badge {
            font-size: 11px;
            font-weight: 600;
            padding: 2px 10px;
            border-radius: 10px;
            flex-shrink: 0;
        }

        .status-badge.pass { background: var(--success-bg); color: var(--success-color); }
        .status-badge.fail { background: var(--danger-bg); color: var(--danger-color); }
        .status-badge.skip { background: var(--warning-bg); color: var(--warning-color); }
        .status-badge.info { background: var(--info-bg); color: var(--info-color); }

        .test-id {
            font-size: 12px;
            color: var(--text-muted);
            font-family: ui-monospace, monospace;
            flex-shrink: 0;
        }

        .test-name {
            font-size: 14px;
            font-weight: 500;
            flex: 1;
            white-space: nowrap;
            overflow: hidden;
            text-overflow: ellipsis;
        }

        .test-times {
            font-size: 12px;
            color: var(--text-muted);
            flex-shrink: 0;
        }

        .test-body {
            display: none;
            border-top: 1px solid var(--border-color);
        }

        .test-card.expanded .test-body {
            display: block;
        }

        .test-desc {
            padding: 10px 16px;
            font-size: 13px;
            color: var(--text-secondary);
            border-bottom: 1px solid var(--border-color);
        }

        .test-tags {
            padding: 8px 16px;
            display: flex;
            gap: 6px;
            flex-wrap: wrap;
            border-bottom: 1px solid var(--border-color);
        }

        .tag-chip {
            font-size: 11px;
            padding: 2px 10px;
            border-radius: 10px;
            background: var(--bg-tertiary);
            color: var(--text-secondary);
        }

        .tag-chip.author {
            background: var(--info-bg);
            color: var(--info-color);
        }

        /* Log table */
        .log-table {
            width: 100%;
            border-collapse: collapse;
            font-size: 13px;
        }

        .log-table th {
            text-align: left;
            padding: 8px 16px;
            font-size: 11px;
            text-transform: uppercase;
            color: var(--text-muted);
            background: var(--bg-secondary);
            border-bottom: 1px solid var(--border-color);
        }

        .log-table td {
            padding: 8px 16px;
            border-bottom: 1px solid var(--border-color);
            vertical-align: top;
        }

        .log-table tr:last-child td {
            border-bottom: none;
        }

        .log-time {
            white-space: nowrap;
            color: var(--text-muted);
            font-family: ui-monospace, monospace;
            font-size: 12px;
        }

        .stack-trace {
            background: var(--bg-tertiary);
            border-radius: 6px;
            padding: 10px;
            font-size: 11px;
            overflow-x: auto;
            white-space: pre-wrap;
            word-break: break-word;
            max-height: 260px;
            color: var(--danger-color);
        }

        .media-thumb {
            max-width: 120px;
            max-height: 90px;
            border: 1px solid var(--border-color);
            border-radius: 6px;
            cursor: zoom-in;
        }

        .media-title {
            display: block;
            font-size: 11px;
            color: var(--text-muted);
            margin-top: 2px;
        }

        .empty-state {
            padding: 48px;
            text-align: center;
            color: var(--text-muted);
        }

        /* Image modal */
        .image-modal {
            display: none;
            position: fixed;
            inset: 0;
            background: rgba(0, 0, 0, 0.8);
            z-index: 100;
            align-items: center;
            justify-content: center;
            cursor: zoom-out;
        }

        .image-modal.open {
            display: flex;
        }

        .image-modal img {
            max-width: 90vw;
            max-height: 90vh;
            border-radius: 8px;
        }

        .footer {
            padding: 16px 24px;
            font-size: 12px;
            color: var(--text-muted);
            text-align: center;
            border-top: 1px solid var(--border-color);
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="header-top">
            <div class="header-title">
                <span class="header-title-main">{{.Title}}</span>
                <span class="header-title-sub">{{.TotalTests}} test case{{if ne .TotalTests 1}}s{{end}}</span>
            </div>
            <div class="generated-badge">Generated {{.GeneratedDate}} at {{.GeneratedTime}}</div>
        </div>

        <div class="dashboard">
            <div class="chart-container">
                <div class="pie-chart">
                    <div class="pie-center">{{printf "%.0f" .PassPct}}%</div>
                </div>
                <div class="chart-legend">
                    {{range .Chart.StatusSummary}}
                    <div class="legend-item">
                        <span class="legend-dot" style="background: {{.Color}};"></span>
                        <span>{{.Value}} {{.Label}}</span>
                    </div>
                    {{end}}
                </div>
            </div>

            {{if .TagBars}}
            <div class="tag-card">
                <div class="tag-card-title">Categories &amp; Authors</div>
                {{range .TagBars}}
                <div class="tag-row">
                    <span class="tag-label">{{.Label}}</span>
                    <div class="tag-bar"><div class="tag-fill" style="width: {{printf "%.1f" .Pct}}%"></div></div>
                    <span class="tag-count">{{.Count}}</span>
                </div>
                {{end}}
            </div>
            {{end}}

            {{if .SystemInfo}}
            <div class="env-card">
                {{range .SystemInfo}}
                <div class="env-item">
                    <span class="env-label">{{.Key}}</span>
                    <span class="env-value">{{.Value}}</span>
                </div>
                {{end}}
            </div>
            {{end}}
        </div>
    </div>

    <div class="toolbar">
        <input type="text" class="search-input" id="search-input" placeholder="Search tests...">
        <button class="filter-btn active" data-filter="all">All ({{.TotalTests}})</button>
        <button class="filter-btn fail" data-filter="fail">Failed ({{.FailCount}})</button>
        <button class="filter-btn" data-filter="pass">Passed ({{.PassCount}})</button>
        <button class="filter-btn" data-filter="skip">Skipped ({{.SkipCount}})</button>
    </div>

    <div class="test-list" id="test-list">
        {{range .Tests}}
        <div class="test-card {{statusClass .Status}}" data-status="{{statusClass .Status}}" data-name="{{.Name}}">
            <div class="test-header" onclick="toggleCard(this)">
                <span class="status-badge {{statusClass .Status}}">{{.Status}}</span>
                <span class="test-id">{{.ID}}</span>
                <span class="test-name">{{.Name}}</span>
                <span class="test-times">{{.StartTime}} &rarr; {{.EndTime}} &middot; {{.Duration}}</span>
            </div>
            <div class="test-body">
                <div class="test-desc">{{.Description}}</div>
                {{if or .Authors .Categories}}
                <div class="test-tags">
                    {{range .Authors}}<span class="tag-chip author">{{.}}</span>{{end}}
                    {{range .Categories}}<span class="tag-chip">{{.}}</span>{{end}}
                </div>
                {{end}}
                {{if .Logs}}
                <table class="log-table">
                    <thead>
                        <tr><th>Time</th><th>Status</th><th>Step</th><th>Details</th><th>Media</th></tr>
                    </thead>
                    <tbody>
                        {{range .Logs}}
                        <tr>
                            <td class="log-time">{{.Timestamp}}</td>
                            <td><span class="status-badge {{statusClass .Status}}">{{.Status}}</span></td>
                            <td>{{.Name}}</td>
                            <td>{{.Details}}</td>
                            <td>
                                {{if .HasMedia}}
                                <img class="media-thumb" src="{{.Media.Data}}" alt="{{.Media.Title}}" onclick="openModal(this.src)">
                                <span class="media-title">{{.Media.Title}}</span>
                                {{end}}
                            </td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
                {{end}}
            </div>
        </div>
        {{end}}
        {{if not .Tests}}
        <div class="empty-state">No test cases recorded</div>
        {{end}}
    </div>

    <div class="image-modal" id="image-modal" onclick="closeModal()">
        <img id="modal-image" src="" alt="Screenshot">
    </div>

    <div class="footer">Generated by Vision Report</div>

    <script>
        function toggleCard(header) {
            header.parentElement.classList.toggle('expanded');
        }

        function openModal(src) {
            document.getElementById('modal-image').src = src;
            document.getElementById('image-modal').classList.add('open');
            event.stopPropagation();
        }

        function closeModal() {
            document.getElementById('image-modal').classList.remove('open');
        }

        let activeFilter = 'all';

        function applyFilters() {
            const term = document.getElementById('search-input').value.toLowerCase();
            document.querySelectorAll('.test-card').forEach(card => {
                const statusOk = activeFilter === 'all' || card.dataset.status === activeFilter;
                const nameOk = !term || card.dataset.name.toLowerCase().includes(term);
                card.style.display = statusOk && nameOk ? '' : 'none';
            });
        }

        document.querySelectorAll('.filter-btn').forEach(btn => {
            btn.addEventListener('click', () => {
                document.querySelectorAll('.filter-btn').forEach(b => b.classList.remove('active'));
                btn.classList.add('active');
                activeFilter = btn.dataset.filter;
                applyFilters();
            });
        });

        document.getElementById('search-input').addEventListener('input', applyFilters);

        document.addEventListener('keydown', (e) => {
            if (e.key === 'Escape') closeModal();
        });
    </script>
</body>
</html>
`
