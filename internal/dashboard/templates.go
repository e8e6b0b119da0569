package dashboard

// Static dashboard templates. Each page is self-contained: chart data
// is inlined as JSON and only the charting library itself is pulled
// from a CDN by reference.

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>webpilot · Test Dashboard</title>
<link rel="stylesheet" href="styles.css">
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
</head>
<body>
<header>
	<h1>Test Dashboard</h1>
	<p class="generated">Generated {{ .Report.GeneratedAt.Format "2006-01-02 15:04:05 MST" }}</p>
	<nav>
		<a href="performance.html">Performance</a>
		<a href="accessibility.html">Accessibility</a>
		<a href="mobile.html">Mobile</a>
	</nav>
</header>
<main>
<section class="cards">
	<div class="card">
		<h2>{{ .Report.Summary.TotalRuns }}</h2>
		<p>Total runs</p>
	</div>
	<div class="card">
		<h2>{{ printf "%.1f%%" .Report.Summary.AveragePassRate }}</h2>
		<p>Average pass rate</p>
	</div>
	<div class="card trend-{{ .Report.Summary.TrendDirection }}">
		<h2>{{ .Report.Summary.TrendDirection | toString | title }}</h2>
		<p>Trend</p>
	</div>
	<div class="card">
		<h2>{{ len .Report.Flakiness }}</h2>
		<p>Flaky tests</p>
	</div>
</section>

<section>
	<h2>Pass rate trend</h2>
	<canvas id="trend-chart"></canvas>
</section>

<section>
	<h2>Flaky tests</h2>
	{{ if .Report.Flakiness }}
	<table>
		<thead><tr><th>Test</th><th>Runs</th><th>Failed</th><th>Flakiness</th><th>Last error</th></tr></thead>
		<tbody>
		{{ range .Report.Flakiness }}
			<tr>
				<td>{{ .Test }}</td>
				<td>{{ .TotalRuns }}</td>
				<td>{{ .Failed }}</td>
				<td>{{ printf "%.1f%%" .FlakinessRate }}</td>
				<td class="error">{{ .LastError | trunc 120 }}</td>
			</tr>
		{{ end }}
		</tbody>
	</table>
	{{ else }}
	<p class="empty">No flaky tests in the recorded history.</p>
	{{ end }}
</section>

<section>
	<h2>Slowest tests</h2>
	{{ if .Report.Performance.SlowestTests }}
	<table>
		<thead><tr><th>Test</th><th>Load time (ms)</th></tr></thead>
		<tbody>
		{{ range .Report.Performance.SlowestTests }}
			<tr><td>{{ .Test }}</td><td>{{ printf "%.0f" .LoadTime }}</td></tr>
		{{ end }}
		</tbody>
	</table>
	{{ else }}
	<p class="empty">No performance samples recorded.</p>
	{{ end }}
</section>
</main>
<script>
const trendData = {{ .TrendJSON }};
new Chart(document.getElementById("trend-chart"), {
	type: "line",
	data: {
		labels: trendData.map(p => p.date.slice(0, 10)),
		datasets: [{
			label: "Pass rate (%)",
			data: trendData.map(p => p.passRate),
			borderColor: "#2f855a",
			tension: 0.2,
		}],
	},
	options: { scales: { y: { min: 0, max: 100 } } },
});
</script>
</body>
</html>
`

const metricPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>webpilot · {{ .Title }}</title>
<link rel="stylesheet" href="styles.css">
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
</head>
<body>
<header>
	<h1>{{ .Title }}</h1>
	<p class="generated">Generated {{ .Report.GeneratedAt.Format "2006-01-02 15:04:05 MST" }}</p>
	<nav><a href="index.html">Dashboard</a></nav>
</header>
<main>
<section class="cards">
	{{ range .Cards }}
	<div class="card"><h2>{{ .Value }}</h2><p>{{ .Label }}</p></div>
	{{ end }}
</section>
<section>
	<h2>{{ .ChartLabel }} over time</h2>
	<canvas id="metric-chart"></canvas>
</section>
</main>
<script>
const trendData = {{ .TrendJSON }};
new Chart(document.getElementById("metric-chart"), {
	type: "line",
	data: {
		labels: trendData.map(p => p.date.slice(0, 10)),
		datasets: [{
			label: {{ .ChartLabel }},
			data: trendData.map(p => p[{{ .ChartField }}]),
			borderColor: "#2b6cb0",
			tension: 0.2,
		}],
	},
});
</script>
</body>
</html>
`

const stylesCSS = `:root {
	--bg: #f7fafc;
	--fg: #1a202c;
	--muted: #718096;
	--card: #ffffff;
	--border: #e2e8f0;
	--good: #2f855a;
	--bad: #c53030;
}

* { box-sizing: border-box; }

body {
	margin: 0;
	font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
	background: var(--bg);
	color: var(--fg);
}

header {
	padding: 1.5rem 2rem;
	background: var(--card);
	border-bottom: 1px solid var(--border);
}

header h1 { margin: 0 0 0.25rem; font-size: 1.4rem; }
header .generated { margin: 0; color: var(--muted); font-size: 0.85rem; }
header nav { margin-top: 0.5rem; }
header nav a { margin-right: 1rem; color: #2b6cb0; text-decoration: none; }

main { padding: 1.5rem 2rem; max-width: 1100px; margin: 0 auto; }

.cards { display: flex; gap: 1rem; flex-wrap: wrap; padding: 0; }

.card {
	background: var(--card);
	border: 1px solid var(--border);
	border-radius: 8px;
	padding: 1rem 1.5rem;
	min-width: 150px;
}

.card h2 { margin: 0; font-size: 1.6rem; }
.card p { margin: 0.25rem 0 0; color: var(--muted); }
.card.trend-improving h2 { color: var(--good); }
.card.trend-declining h2 { color: var(--bad); }

section { margin-bottom: 2rem; }

table { width: 100%; border-collapse: collapse; background: var(--card); }
th, td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid var(--border); }
th { color: var(--muted); font-weight: 600; font-size: 0.85rem; }
td.error { color: var(--bad); font-size: 0.85rem; }

.empty { color: var(--muted); }

canvas { background: var(--card); border: 1px solid var(--border); border-radius: 8px; padding: 0.5rem; }
`
