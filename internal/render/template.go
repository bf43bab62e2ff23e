package render

import "html/template"

// pageTemplate is the single-document rendering target. Every
// interpolated value is escaped by html/template; the payload is
// pre-serialized, script-safe JSON.
var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Org.Name}} - AI Org Chart</title>
{{- if .Marketing}}
<link rel="preconnect" href="https://fonts.googleapis.com">
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap" rel="stylesheet">
{{- end}}
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: {{if .Marketing}}'Inter', {{end}}-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    background: #0f172a; color: #e2e8f0; min-height: 100vh;
  }
  .page { max-width: 1100px; margin: 0 auto; padding: 0 24px 40px; }

  .header { text-align: center; padding: 40px 20px 10px; }
  .header h1 {
    font-size: 2.1rem;
    background: linear-gradient(135deg, #818cf8, #c084fc);
    -webkit-background-clip: text; -webkit-text-fill-color: transparent;
    margin-bottom: 4px;
  }
  .header p { color: #94a3b8; font-size: 0.95rem; }

  .install {
    max-width: 640px; margin: 18px auto 0; background: #1e293b;
    border: 1px solid #334155; border-radius: 12px; padding: 16px 20px;
  }
  .install h3 { font-size: 0.8rem; color: #94a3b8; text-transform: uppercase; letter-spacing: 2px; margin-bottom: 8px; }
  .install code {
    display: block; background: #0f172a; border-radius: 8px; padding: 10px 14px;
    font-size: 0.85rem; color: #a5b4fc; overflow-x: auto;
  }

  .section { padding: 22px 0 6px; }
  .section-title {
    font-size: 0.8rem; color: #94a3b8; text-transform: uppercase;
    letter-spacing: 2px; margin-bottom: 14px; padding-left: 10px;
    border-left: 3px solid #818cf8;
  }

  .agent-row { display: flex; flex-wrap: wrap; gap: 16px; justify-content: center; }
  .agent-card {
    background: #1e293b; border: 1px solid #334155; border-left: 4px solid var(--accent);
    border-radius: 12px; padding: 14px 16px; width: 230px;
    transition: all 0.2s; cursor: pointer;
  }
  .agent-card:hover, .agent-card.highlight {
    border-color: var(--accent); box-shadow: 0 0 18px rgba(129,140,248,0.25);
    transform: translateY(-2px);
  }
  .agent-header { display: flex; align-items: center; gap: 8px; margin-bottom: 6px; }
  .agent-dot { width: 10px; height: 10px; border-radius: 50%; background: var(--accent); flex-shrink: 0; }
  .agent-name { font-weight: 600; font-size: 0.98rem; flex: 1; }
  .model-badge {
    font-size: 0.62rem; padding: 2px 8px; border-radius: 8px; color: #fff;
    font-weight: 600; text-transform: uppercase; letter-spacing: 0.5px;
  }
  .agent-desc { font-size: 0.78rem; color: #94a3b8; margin-bottom: 8px; line-height: 1.4; }
  .tag-row { display: flex; flex-wrap: wrap; gap: 4px; }
  .tag { font-size: 0.68rem; padding: 2px 7px; border-radius: 6px; font-weight: 500; }
  .tag-skill { background: rgba(139,92,246,0.2); color: #a78bfa; }
  .tag-mcp { background: rgba(16,185,129,0.15); color: #6ee7b7; }
  .tag-cli { background: rgba(251,191,36,0.12); color: #fcd34d; }

  .lifecycle { display: flex; flex-direction: column; gap: 0; max-width: 560px; margin: 0 auto; }
  .phase { border-left: 3px solid var(--phase-color); padding: 8px 0 8px 18px; margin-left: 8px; }
  .phase-label {
    font-size: 0.7rem; text-transform: uppercase; letter-spacing: 2px;
    color: var(--phase-color); margin-bottom: 8px; font-weight: 700;
  }
  .lc-step {
    display: flex; align-items: center; gap: 10px; background: #1e293b;
    border: 1px solid #334155; border-radius: 10px; padding: 9px 14px;
    margin-bottom: 8px; cursor: pointer; transition: all 0.2s;
  }
  .lc-step:hover, .lc-step.highlight { border-color: #818cf8; }
  .lc-cmd { font-family: monospace; font-size: 0.86rem; color: #e2e8f0; flex: 1; }
  .lc-agents { display: flex; gap: 4px; }
  .lc-agent {
    font-size: 0.66rem; padding: 2px 7px; border-radius: 6px;
    background: rgba(129,140,248,0.12); color: #a5b4fc;
  }
  .lc-branch {
    display: flex; align-items: center; gap: 8px; margin: -2px 0 8px 24px;
    font-size: 0.75rem; color: #64748b; font-style: italic;
  }
  .lc-branch code { color: #fcd34d; font-style: normal; }

  .util-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(230px, 1fr)); gap: 12px; }
  .util-card {
    background: rgba(139,92,246,0.06); border: 1px solid rgba(139,92,246,0.22);
    border-radius: 12px; padding: 14px 16px; transition: all 0.2s;
  }
  .util-card:hover { border-color: #8b5cf6; }
  .util-head { display: flex; align-items: center; gap: 8px; margin-bottom: 6px; }
  .util-icon { font-size: 1.1rem; }
  .util-name { font-family: monospace; font-weight: 600; font-size: 0.88rem; color: #a78bfa; }
  .util-desc { font-size: 0.78rem; color: #94a3b8; line-height: 1.45; }

  .team-row { display: flex; flex-wrap: wrap; gap: 14px; justify-content: center; }
  .team-card {
    background: transparent; border: 2px dashed #475569; border-radius: 12px;
    padding: 14px 18px; min-width: 210px; cursor: pointer; transition: all 0.2s;
  }
  .team-card:hover, .team-card.highlight { border-color: #818cf8; background: rgba(129,140,248,0.05); }
  .team-name { font-weight: 600; font-size: 0.95rem; margin-bottom: 6px; }
  .team-members { display: flex; flex-wrap: wrap; gap: 4px; }
  .team-member {
    font-size: 0.74rem; padding: 3px 8px; border-radius: 6px;
    background: rgba(129,140,248,0.12); color: #a5b4fc;
  }
  .kickoff-note {
    margin: 14px auto 0; max-width: 560px; display: flex; gap: 10px;
    align-items: flex-start; font-size: 0.8rem; color: #94a3b8;
    background: #1e293b; border-radius: 10px; padding: 12px 16px;
  }

  .page.filtering .agent-card:not(.highlight),
  .page.filtering .lc-step:not(.highlight),
  .page.filtering .team-card:not(.highlight) { opacity: 0.25; }

  .detail-overlay {
    position: fixed; top: 0; right: 0; width: 430px; max-width: 92vw; height: 100vh;
    background: #1e293b; border-left: 2px solid #334155; z-index: 100;
    transform: translateX(100%); transition: transform 0.25s ease;
    display: flex; flex-direction: column;
  }
  .detail-overlay.open { transform: translateX(0); }
  .detail-header {
    display: flex; align-items: center; justify-content: space-between;
    padding: 16px 20px; border-bottom: 1px solid #334155;
  }
  .detail-header h2 { font-size: 1.05rem; }
  .detail-type {
    font-size: 0.68rem; text-transform: uppercase; letter-spacing: 1px;
    padding: 2px 8px; border-radius: 6px; margin-right: 10px; font-weight: 600;
    background: rgba(129,140,248,0.15); color: #a5b4fc;
  }
  .detail-close {
    background: none; border: none; color: #94a3b8; font-size: 1.4rem; cursor: pointer;
  }
  .detail-body { padding: 20px; overflow-y: auto; flex: 1; font-size: 0.85rem; line-height: 1.7; color: #cbd5e1; }
  .detail-body h1, .detail-body h2, .detail-body h3 { color: #e2e8f0; margin: 14px 0 6px; font-size: 1rem; }
  .detail-body ul, .detail-body ol { padding-left: 20px; margin: 6px 0; }
  .detail-body code { color: #a78bfa; }
  .detail-body pre { background: #0f172a; border-radius: 8px; padding: 12px; overflow-x: auto; margin: 8px 0; }
  .detail-meta { background: #0f172a; border-radius: 8px; padding: 12px; margin-bottom: 14px; font-size: 0.8rem; }
  .detail-meta span { display: block; margin: 3px 0; }
  .detail-meta .meta-label { color: #64748b; text-transform: uppercase; font-size: 0.64rem; letter-spacing: 1px; }
  .detail-scrim {
    position: fixed; inset: 0; background: rgba(0,0,0,0.35); z-index: 99; display: none;
  }
  .detail-scrim.open { display: block; }

  .footer { text-align: center; padding: 30px; color: #334155; font-size: 0.8rem; }
  .footer a { color: #64748b; }
</style>
</head>
<body>
<div class="page" id="page">
  <div class="header">
    <h1>{{.Org.Name}}</h1>
    <p>AI Org Chart</p>
  </div>
{{- if .Marketing}}
  <div class="install">
    <h3>Run this org yourself</h3>
    <code>claude plugin install {{.Slug}}</code>
    <code>orgviz generate --plugin-dir . --output org-chart.html</code>
  </div>
{{- end}}

  <div class="section">
    <div class="section-title">Team Roster</div>
    <div class="agent-row">
{{- range .Agents}}
      <div class="agent-card" id="{{.ID}}" data-agent="{{.Name}}" style="--accent: {{.Color}}">
        <div class="agent-header">
          <span class="agent-dot"></span>
          <span class="agent-name">{{.Name}}</span>
          <span class="model-badge" style="background: {{.ModelColor}}">{{.Model}}</span>
        </div>
{{- if .Description}}
        <div class="agent-desc">{{.Description}}</div>
{{- end}}
        <div class="tag-row">
{{- range .Skills}}
          <span class="tag tag-skill">/{{.}}</span>
{{- end}}
{{- range .MCPs}}
          <span class="tag tag-mcp">{{.}}</span>
{{- end}}
{{- range .CLITools}}
          <span class="tag tag-cli">{{.}}</span>
{{- end}}
        </div>
      </div>
{{- else}}
      <p style="color:#64748b">No agents defined</p>
{{- end}}
    </div>
  </div>

{{- if .Phases}}
  <div class="section">
    <div class="section-title">Product Lifecycle</div>
    <div class="lifecycle">
{{- range .Phases}}
      <div class="phase" style="--phase-color: {{.Phase.Color}}">
        <div class="phase-label">{{.Phase.Name}}</div>
{{- range .Steps}}
        <div class="lc-step" id="step-{{.Index}}" data-step="{{.Index}}" data-detail="skill-{{.Name}}">
          <span class="lc-cmd">/{{.Name}}</span>
          <span class="lc-agents">
{{- range .Agents}}
            <span class="lc-agent">{{.}}</span>
{{- end}}
          </span>
        </div>
{{- if .BatchBranch}}
        <div class="lc-branch">or batch-execute the rest with <code>/batch-run</code></div>
{{- end}}
{{- end}}
      </div>
{{- end}}
    </div>
  </div>
{{- end}}

{{- if .Utilities}}
  <div class="section">
    <div class="section-title">Always Available</div>
    <div class="util-grid">
{{- range .Utilities}}
      <div class="util-card">
        <div class="util-head">
          <span class="util-icon">{{.Icon}}</span>
          <span class="util-name">{{.Name}}</span>
        </div>
        <div class="util-desc">{{.Description}}</div>
      </div>
{{- end}}
    </div>
  </div>
{{- end}}

{{- if .Teams}}
  <div class="section">
    <div class="section-title">Agent Teams</div>
    <div class="team-row">
{{- range .Teams}}
      <div class="team-card" id="{{.ID}}" data-detail="{{.ID}}">
        <div class="team-name">{{.Name}}</div>
        <div class="team-members">
{{- range .Members}}
          <span class="team-member">{{.}}</span>
{{- end}}
        </div>
      </div>
{{- end}}
    </div>
{{- if .Kickoff}}
    <div class="kickoff-note">
      <span>{{.Kickoff.Icon}}</span>
      <span><strong>/kickoff</strong> — {{.Kickoff.Description}}</span>
    </div>
{{- end}}
  </div>
{{- end}}

  <div class="footer">
{{- if .Marketing}}
    Generated by <a href="https://github.com/orgviz/cli">orgviz</a> {{.Version}} &middot; share your org chart
{{- else}}
    Generated by orgviz
{{- end}}
  </div>
</div>

<div class="detail-scrim" id="detail-scrim"></div>
<div class="detail-overlay" id="detail-panel">
  <div class="detail-header">
    <div style="display:flex;align-items:center">
      <span class="detail-type" id="detail-type-badge"></span>
      <h2 id="detail-title"></h2>
    </div>
    <button class="detail-close" id="detail-close">&times;</button>
  </div>
  <div class="detail-body" id="detail-body"></div>
</div>

<script>
const DATA = {{.Payload}};

function slugify(name) { return name.toLowerCase().split(' ').join('-'); }

function setFiltering(on) {
  document.getElementById('page').classList.toggle('filtering', on);
}

function clearHighlights() {
  document.querySelectorAll('.highlight').forEach(el => el.classList.remove('highlight'));
  setFiltering(false);
}

function highlightAgent(name) {
  const h = DATA.highlights[slugify(name)];
  if (!h) return;
  setFiltering(true);
  const card = document.getElementById('agent-' + slugify(name));
  if (card) card.classList.add('highlight');
  h.steps.forEach(i => {
    const el = document.getElementById('step-' + i);
    if (el) el.classList.add('highlight');
  });
  h.teams.forEach(i => {
    const el = document.getElementById('team-' + i);
    if (el) el.classList.add('highlight');
  });
}

document.querySelectorAll('.agent-card').forEach(card => {
  card.addEventListener('mouseenter', () => highlightAgent(card.dataset.agent));
  card.addEventListener('mouseleave', clearHighlights);
});

document.querySelectorAll('.team-card').forEach(card => {
  card.addEventListener('mouseenter', () => {
    const detail = DATA.details[card.id];
    if (!detail) return;
    setFiltering(true);
    card.classList.add('highlight');
    (detail.members || []).forEach(m => {
      const el = document.getElementById('agent-' + slugify(m));
      if (el) el.classList.add('highlight');
    });
  });
  card.addEventListener('mouseleave', clearHighlights);
});

const panel = document.getElementById('detail-panel');
const scrim = document.getElementById('detail-scrim');

function meta(label, value) {
  return '<span><span class="meta-label">' + label + '</span> ' + value + '</span>';
}

function openDetail(id) {
  const d = DATA.details[id];
  if (!d) return;
  document.getElementById('detail-title').textContent = d.name;
  document.getElementById('detail-type-badge').textContent = d.type;
  let body = '';
  const rows = [];
  if (d.model) rows.push(meta('Model', d.model));
  if (d.skills && d.skills.length) rows.push(meta('Skills', d.skills.map(s => '/' + s).join(', ')));
  if (d.mcps && d.mcps.length) rows.push(meta('Tools', d.mcps.join(', ')));
  if (d.cliTools && d.cliTools.length) rows.push(meta('CLI', d.cliTools.join(', ')));
  if (d.usedBy && d.usedBy.length) rows.push(meta('Used by', d.usedBy.join(', ')));
  if (d.members && d.members.length) rows.push(meta('Members', d.members.join(', ')));
  if (rows.length) body += '<div class="detail-meta">' + rows.join('') + '</div>';
  if (d.description) {
    body += '<p style="color:#94a3b8;font-style:italic;margin-bottom:12px">' +
      d.description.split('<').join('&lt;') + '</p>';
  }
  if (d.html) body += d.html;
  if (!d.description && !d.html) {
    body += '<p style="color:#475569">No detailed description available.</p>';
  }
  document.getElementById('detail-body').innerHTML = body;
  panel.classList.add('open');
  scrim.classList.add('open');
}

function closeDetail() {
  panel.classList.remove('open');
  scrim.classList.remove('open');
}

document.getElementById('detail-close').addEventListener('click', closeDetail);
scrim.addEventListener('click', closeDetail);
document.addEventListener('keydown', ev => { if (ev.key === 'Escape') closeDetail(); });

document.querySelectorAll('.agent-card').forEach(card => {
  card.addEventListener('click', () => openDetail('agent-' + slugify(card.dataset.agent)));
});
document.querySelectorAll('[data-detail]').forEach(el => {
  el.addEventListener('click', () => openDetail(el.dataset.detail));
});
</script>
</body>
</html>
`
