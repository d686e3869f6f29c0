package site

// pageTemplate is the Go html/template for every page of the site.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-page="{{.Page}}" data-base="{{.BasePath}}"{{if .Interactive}} data-interactive="true"{{end}}>
  <header class="site-header">
    <a href="{{.BasePath}}index.html" class="site-title">{{.SiteTitle}}</a>
    <button class="menu-toggle" id="menu-toggle" aria-label="Toggle navigation">
      <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
      </svg>
    </button>
    <nav class="site-nav" id="site-nav">
      <ul>
        {{range .Nav}}<li><a href="{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Title}}</a></li>
        {{end}}
      </ul>
    </nav>
    <div class="site-search">
      <input type="text" id="search-input" placeholder="{{if .Interactive}}Filter this page...{{else}}Search the site...{{end}}" autocomplete="off">
      <div class="search-results" id="search-results"></div>
    </div>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
      <svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
      </svg>
    </button>
  </header>
  <main class="content" id="main">
    {{.Content}}
  </main>
  <footer class="site-footer">
    <p>&copy; {{.Year}} {{.SiteTitle}}</p>
  </footer>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the stylesheet written next to the pages.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-alt: #f6f8fa;
  --fg: #1f2328;
  --muted: #656d76;
  --border: #d0d7de;
  --accent: #0969da;
  --danger: #cf222e;
  --success: #1a7f37;
  --warning: #9a6700;
  --radius: 8px;
}
[data-theme="dark"] {
  --bg: #0d1117;
  --bg-alt: #161b22;
  --fg: #e6edf3;
  --muted: #8d96a0;
  --border: #30363d;
  --accent: #4493f8;
}

* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.6; }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
[hidden] { display: none !important; }

/* ============ Header ============ */
.site-header { display: flex; align-items: center; gap: 1rem; padding: 0.75rem 1.5rem; border-bottom: 1px solid var(--border); background: var(--bg-alt); position: sticky; top: 0; z-index: 10; }
.site-title { font-weight: 700; font-size: 1.1rem; color: var(--fg); }
.site-nav ul { display: flex; gap: 1rem; list-style: none; margin: 0; padding: 0; }
.site-nav a { color: var(--muted); }
.site-nav a.active { color: var(--fg); font-weight: 600; }
.menu-toggle, .theme-toggle { background: none; border: none; color: var(--fg); cursor: pointer; }
.menu-toggle { display: none; }
.site-search { margin-left: auto; position: relative; }
#search-input { padding: 0.4rem 0.75rem; border: 1px solid var(--border); border-radius: var(--radius); background: var(--bg); color: var(--fg); width: 16rem; }
.search-results { position: absolute; right: 0; top: 2.5rem; width: 24rem; background: var(--bg); border: 1px solid var(--border); border-radius: var(--radius); display: none; max-height: 60vh; overflow-y: auto; }
.search-results.visible { display: block; }
.search-result { display: block; padding: 0.5rem 0.75rem; border-bottom: 1px solid var(--border); }
.search-result small { display: block; color: var(--muted); }

/* ============ Layout ============ */
.content { max-width: 1100px; margin: 0 auto; padding: 2rem 1.5rem; }
.page > h1 { margin-top: 0; }
.collection { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 1.25rem; }
#courses-container { display: block; }
.section { margin-bottom: 2rem; }
.group { display: flex; flex-wrap: wrap; gap: 0.5rem; align-items: center; margin: 0.5rem 0; }

/* ============ Cards ============ */
.card { border: 1px solid var(--border); border-radius: var(--radius); padding: 1rem 1.25rem; background: var(--bg); }
.card img { width: 100%; max-height: 180px; object-fit: cover; border-radius: var(--radius); }
.card.deadline-soon { border-color: var(--danger); box-shadow: 0 0 0 1px var(--danger); }
.card.deadline-past { opacity: 0.6; }

/* ============ Badges & chips ============ */
.badge { display: inline-block; padding: 0.1rem 0.6rem; border-radius: 999px; font-size: 0.8rem; background: var(--bg-alt); border: 1px solid var(--border); }
.badge-success, .badge-green { color: var(--success); border-color: var(--success); }
.badge-danger, .badge-red { color: var(--danger); border-color: var(--danger); }
.badge-warning, .badge-yellow, .badge-orange { color: var(--warning); border-color: var(--warning); }
.badge-blue, .badge-info { color: var(--accent); border-color: var(--accent); }
.badge-purple { color: #8250df; border-color: #8250df; }
.badge[data-event] { cursor: pointer; user-select: none; }
.badge.active { background: var(--accent); color: #fff; border-color: var(--accent); }

/* ============ Stats ============ */
.stat { text-align: center; padding: 0.75rem 1.25rem; border: 1px solid var(--border); border-radius: var(--radius); min-width: 8rem; }
.stat strong { display: block; font-size: 1.6rem; }
.stat span { color: var(--muted); font-size: 0.85rem; }

/* ============ Placeholders ============ */
.placeholder { padding: 2rem; text-align: center; color: var(--muted); border: 1px dashed var(--border); border-radius: var(--radius); }
.placeholder-error { color: var(--danger); border-color: var(--danger); }

/* ============ Gallery ============ */
.gallery { display: flex; gap: 0.75rem; overflow-x: auto; scroll-snap-type: x mandatory; }
.gallery img { scroll-snap-align: start; max-height: 320px; border-radius: var(--radius); }

/* ============ Footer ============ */
.site-footer { text-align: center; color: var(--muted); padding: 2rem; border-top: 1px solid var(--border); }

@media (max-width: 768px) {
  .menu-toggle { display: block; }
  .site-nav { display: none; width: 100%; }
  .site-nav.open { display: block; }
  .site-nav ul { flex-direction: column; }
  .site-header { flex-wrap: wrap; }
  #search-input { width: 100%; }
  .site-search { width: 100%; }
}
`

// jsContent wires the chips and search box. Filtering is delegated to the
// server's fragment endpoint, so the same selection logic runs for the
// static site and the API. Without a server the initial view stays put.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var body = document.body;
  var base = body.getAttribute("data-base") || "";
  var page = body.getAttribute("data-page");
  var interactive = body.getAttribute("data-interactive") === "true";

  // ===== Theme toggle =====
  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("folio-theme", theme); } catch(e) {}
  }
  var stored = null;
  try { stored = localStorage.getItem("folio-theme"); } catch(e) {}
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }
  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      setTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  // ===== Mobile nav =====
  var menuToggle = document.getElementById("menu-toggle");
  var nav = document.getElementById("site-nav");
  if (menuToggle && nav) {
    menuToggle.addEventListener("click", function() { nav.classList.toggle("open"); });
  }

  // ===== Image fallbacks =====
  function wireImages(root) {
    root.querySelectorAll("img[data-fallback]").forEach(function(img) {
      img.addEventListener("error", function onError() {
        img.removeEventListener("error", onError);
        img.src = base + img.getAttribute("data-fallback");
      });
    });
  }
  wireImages(document);

  // ===== Extended biography =====
  var detailed = document.getElementById("biography-detailed");
  if (detailed) {
    var more = document.createElement("button");
    more.className = "badge";
    more.textContent = "Read full biography";
    more.addEventListener("click", function() {
      detailed.hidden = !detailed.hidden;
      more.textContent = detailed.hidden ? "Read full biography" : "Show less";
    });
    detailed.parentNode.insertBefore(more, detailed);
  }

  // ===== Collection filtering =====
  var selection = { filter: "all", tags: [], q: "" };

  function query() {
    var params = new URLSearchParams();
    if (selection.filter && selection.filter !== "all") params.set("filter", selection.filter);
    selection.tags.forEach(function(t) { params.append("tag", t); });
    if (selection.q) params.set("q", selection.q);
    return params.toString();
  }

  function placeholder(name) {
    return document.querySelector('.placeholder[data-name="' + name + '"]');
  }

  function refresh() {
    var pageEl = document.getElementById("page-" + page);
    if (!pageEl) return;
    var loading = placeholder("loading");
    if (loading) loading.hidden = false;
    fetch(base + "api/pages/" + page + "/fragment?" + query())
      .then(function(r) {
        if (!r.ok) throw new Error("status " + r.status);
        return r.text();
      })
      .then(function(text) {
        var tmp = document.createElement("div");
        tmp.innerHTML = text;
        var next = tmp.firstElementChild;
        if (next) {
          pageEl.replaceWith(next);
          wireChips(next);
          wireImages(next);
        }
      })
      .catch(function() {
        if (loading) loading.hidden = true;
      });
  }

  function wireChips(root) {
    root.querySelectorAll(".badge[data-event]").forEach(function(chip) {
      chip.addEventListener("click", function() {
        var ev = chip.getAttribute("data-event");
        var value = chip.getAttribute("data-value");
        if (ev === "filter") {
          selection.filter = value;
        } else if (ev === "tag") {
          var i = selection.tags.indexOf(value);
          if (i >= 0) selection.tags.splice(i, 1); else selection.tags.push(value);
        }
        refresh();
      });
    });
  }
  if (interactive) wireChips(document);

  // ===== Search =====
  var searchInput = document.getElementById("search-input");
  var results = document.getElementById("search-results");
  var searchIndex = null;

  fetch(base + "search-index.json")
    .then(function(r) { return r.json(); })
    .then(function(data) { searchIndex = data; })
    .catch(function() { searchIndex = null; });

  var timer = null;
  if (searchInput) {
    searchInput.addEventListener("input", function() {
      var value = this.value.trim();
      if (interactive) {
        clearTimeout(timer);
        timer = setTimeout(function() { selection.q = value; refresh(); }, 200);
        return;
      }
      showResults(value.toLowerCase());
    });
  }

  function showResults(q) {
    if (!results) return;
    results.innerHTML = "";
    if (!q || !searchIndex) { results.classList.remove("visible"); return; }
    var hits = searchIndex.filter(function(e) {
      return (e.title + " " + (e.summary || "") + " " + (e.content || "")).toLowerCase().indexOf(q) !== -1;
    }).slice(0, 10);
    hits.forEach(function(e) {
      var a = document.createElement("a");
      a.className = "search-result";
      a.href = base + e.path;
      a.textContent = e.title;
      var small = document.createElement("small");
      small.textContent = e.page + (e.summary ? " - " + e.summary : "");
      a.appendChild(small);
      results.appendChild(a);
    });
    results.classList.toggle("visible", hits.length > 0);
  }
})();
`
