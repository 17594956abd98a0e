package report

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<link rel="stylesheet" href="{{.Assets.TabulatorCSS}}">
<style>
  body { margin: 16px; font: 14px/1.45 system-ui, -apple-system, "Segoe UI", Roboto, Ubuntu, sans-serif; color: #111; }
  h1, h2, h3, h4 { margin: 0.2rem 0 0.7rem; }
  .viz-wrap { display: flex; gap: 1rem; align-items: stretch; }
  .viz-main { flex: 3; display: flex; flex-direction: column; }
  #viz-container { flex: 1; min-height: 620px; height: 70vh; border: 1px solid #ccc; position: relative; }
  #viz { width: 100%; height: 100%; display: block; }
  #info-pane { flex: 1; max-height: 70vh; overflow: auto; border: 1px solid #ddd; padding: 0.75rem; background: #fafafa; }
  .toolbar { display: flex; gap: 0.5rem; align-items: center; margin-bottom: 0.5rem; flex-wrap: wrap; }
  .toolbar input[type="text"] { flex: 1; min-width: 220px; padding: 0.5rem; border: 1px solid #ccc; border-radius: 8px; }
  .toolbar button, .table-controls button { padding: 0.5rem 0.75rem; border: 1px solid #ccc; border-radius: 8px; background: #fff; cursor: pointer; }
  .legend { display: flex; align-items: center; gap: .5rem; flex-wrap: wrap; font-size: 13px; }
  .legend .item { display: inline-flex; align-items: center; gap: .35rem; margin-right: .75rem; }
  .legend .swatch { width: 14px; height: 14px; display: inline-block; border-radius: 2px; border: 1px solid rgba(0,0,0,.2); }
  .node circle { cursor: grab; stroke: #333; stroke-width: 0.17px; }
  .node:active circle { cursor: grabbing; }
  .node.selected circle { stroke: #111; stroke-width: 1px; }
  .dimmed { opacity: 0.15; }
  .label { font: 10px/1.2 system-ui, -apple-system, "Segoe UI", Roboto, Ubuntu, sans-serif; pointer-events: none; }
  .edge { stroke: #aaa; stroke-opacity: 0.85; fill: none; }
  .edge.highlight { stroke: #333; }
  .edge-label { font-size: 9px; line-height: 1; fill: #555; }
  .hidden { display: none !important; }
  .table-controls { margin: 0.25rem 0 0.5rem; display: flex; gap: 0.5rem; }
  #vertex-table .tabulator-cell, #edge-table .tabulator-cell { white-space: nowrap; text-overflow: ellipsis; overflow: hidden; }
</style>
</head>
<body>

<h2>{{.Title}}</h2>
<p>
  Nodes are coloured by their number of <em>connections</em> (low to high); edge width follows the edge <em>weight</em>.
</p>

<div class="viz-wrap">
  <div class="viz-main">
    <div class="toolbar">
      <div class="legend" id="legend"></div>
      <button id="btnToggleLabels" title="Show or hide node and edge labels">Hide labels</button>
      <input id="searchBox" type="text" placeholder="Search node (name or id)...">
      <button id="btnSearch">Search</button>
      <button id="btnClear">Clear selection</button>
      <button id="btnFit">Fit</button>
    </div>
    <div id="viz-container">
      <svg id="viz"></svg>
    </div>
  </div>
  <div id="info-pane"></div>
</div>

<hr style="margin: 1.25rem 0">

<h3>Vertices</h3>
<div class="table-controls">
  <button id="vertex-csv">CSV</button>
  <button id="vertex-xlsx">XLSX</button>
</div>
<div id="vertex-table"></div>

<h3 style="margin-top: 1.5rem;">Edges</h3>
<p>Pairs that collaborate most and how many neighbours they share.</p>
<div class="table-controls">
  <button id="edge-csv">CSV</button>
  <button id="edge-xlsx">XLSX</button>
</div>
<div id="edge-table"></div>

<script src="{{.Assets.D3}}"></script>
<script src="{{.Assets.TabulatorJS}}"></script>
<script src="{{.Assets.XLSX}}"></script>

<script>
  var GRAPH_DATA = {{.GraphJSON}};
  var VERTEX_ROWS = {{.VertexJSON}};
  var EDGE_ROWS = {{.EdgeJSON}};
  var PALETTE = {{.PaletteJSON}};
  var LEGEND = {{.LegendJSON}};

  var SPREAD = 300;
  var INFO_EMPTY = "<h4>Node details</h4><p>Click a node (or search) to see its details here.</p>";

  var svg = d3.select("#viz"),
      root = svg.append("g"),
      edgeLayer = root.append("g").attr("class", "edges"),
      nodeLayer = root.append("g").attr("class", "nodes"),
      labelLayer = root.append("g").attr("class", "labels"),
      edgeLabelLayer = root.append("g").attr("class", "edge-labels");

  var nodes = GRAPH_DATA.nodes.map(function(n) {
    return Object.assign({}, n, { x: n.x * SPREAD, y: n.y * SPREAD });
  });
  var byId = new Map(nodes.map(function(n) { return [n.id, n]; }));
  var links = GRAPH_DATA.links.map(function(e) {
    return Object.assign({}, e, { source: byId.get(e.source), target: byId.get(e.target) });
  });

  var zoom = d3.zoom().scaleExtent([0.2, 8]).on("zoom", function(ev) { root.attr("transform", ev.transform); });
  svg.call(zoom);

  function getBox() { return document.getElementById("viz-container").getBoundingClientRect(); }
  var box = getBox(), width = box.width, height = box.height;
  svg.attr("width", width).attr("height", height);

  var weights = links.map(function(d) { return +d.weight || 0; });
  var minW = d3.min(weights) || 0, maxW = d3.max(weights) || 1;
  var edgeWidth = d3.scaleLinear().domain([minW, maxW]).range([1.2, 10]).clamp(true);
  var edgeOpacity = d3.scaleLinear().domain([minW, maxW]).range([0.56, 0.82]).clamp(true);

  var edge = edgeLayer.selectAll("path")
    .data(links)
    .join("path")
    .attr("class", "edge")
    .attr("id", function(_, i) { return "e" + i; })
    .attr("stroke", function(d) { return d.color || "#aaa"; })
    .attr("stroke-width", function(d) { return edgeWidth(+d.weight || 0); })
    .attr("stroke-opacity", function(d) { return edgeOpacity(+d.weight || 0); });

  var edgeLabels = edgeLabelLayer.selectAll("text")
    .data(links)
    .join("text")
    .attr("class", "edge-label");
  edgeLabels.append("textPath")
    .attr("href", function(_, i) { return "#e" + i; })
    .attr("startOffset", "50%")
    .attr("text-anchor", "middle")
    .text(function(d) { return d.weight ? String(d.weight) : ""; });

  var node = nodeLayer.selectAll("g.node")
    .data(nodes, function(d) { return d.id; })
    .join(function(enter) {
      var g = enter.append("g").attr("class", "node");
      g.append("circle")
        .attr("r", function(d) { return +d.r || 8; })
        .attr("fill", function(d) { return d.color || PALETTE[0]; });
      return g;
    });

  var labels = labelLayer.selectAll("text")
    .data(nodes, function(d) { return d.id; })
    .join("text")
    .attr("class", "label")
    .attr("text-anchor", "middle")
    .text(function(d) { return d.label; });

  function updatePositions() {
    edge.attr("d", function(d) {
      return "M" + d.source.x + "," + d.source.y + " L" + d.target.x + "," + d.target.y;
    });
    node.attr("transform", function(d) { return "translate(" + d.x + ", " + d.y + ")"; });
    labels.attr("x", function(d) { return d.x; }).attr("y", function(d) { return d.y - (d.r || 8) - 2; });
  }
  updatePositions();

  node.call(d3.drag()
    .on("start", function(ev, d) { d.fx = d.x; d.fy = d.y; })
    .on("drag", function(ev, d) { d.x = ev.x; d.y = ev.y; updatePositions(); })
    .on("end", function(ev, d) { d.fx = null; d.fy = null; })
  );

  var selectedId = null;
  function touches(e, id) { return e.source.id === id || e.target.id === id; }
  function neighborSet(id) {
    var set = new Set([id]);
    links.forEach(function(e) {
      if (e.source.id === id) set.add(e.target.id);
      if (e.target.id === id) set.add(e.source.id);
    });
    return set;
  }

  function renderSelection() {
    if (!selectedId) {
      node.classed("selected", false).classed("dimmed", false);
      labels.classed("dimmed", false);
      edge.classed("highlight", false).classed("dimmed", false);
      edgeLabels.classed("dimmed", false);
      return;
    }
    var keep = neighborSet(selectedId);
    node.classed("selected", function(d) { return d.id === selectedId; })
        .classed("dimmed", function(d) { return !keep.has(d.id); });
    labels.classed("dimmed", function(d) { return !keep.has(d.id); });
    edge.classed("highlight", function(d) { return touches(d, selectedId); })
        .classed("dimmed", function(d) { return !touches(d, selectedId); });
    edgeLabels.classed("dimmed", function(d) { return !touches(d, selectedId); });
  }

  function fillInfo(d) {
    var pane = document.getElementById("info-pane");
    var fields = [
      ["Name", d.label],
      ["ID", d.id],
      ["Total publications", d.total_publications],
      ["Co-authored publications", d.coauthored_publications],
      ["Connections", d.connections],
      ["Co-authorship ratio (%)", d.coauthorship_ratio]
    ];
    pane.textContent = "";
    d3.select(pane).append("h4").text(d.label || d.id);
    var list = d3.select(pane).append("ul");
    fields.forEach(function(f) {
      if (f[1] === undefined || f[1] === null || f[1] === "") return;
      var li = list.append("li");
      li.append("strong").text(f[0] + ": ");
      li.append("span").text(f[1]);
    });
  }

  function clearInfo() { document.getElementById("info-pane").innerHTML = INFO_EMPTY; }
  clearInfo();

  function selectNodeById(id) {
    var d = byId.get(id);
    if (!d) return;
    selectedId = d.id;
    fillInfo(d);
    renderSelection();
    var t = d3.zoomTransform(svg.node());
    var scale = Math.max(1.2, t.k);
    svg.transition().duration(600)
      .call(zoom.transform, d3.zoomIdentity.translate(width / 2 - d.x * scale, height / 2 - d.y * scale).scale(scale));
  }
  node.on("click", function(_, d) { selectNodeById(d.id); });

  var DIACRITICS = new RegExp("\\p{Diacritic}", "gu");
  function norm(s) {
    return (s || "").toString().normalize("NFD").replace(DIACRITICS, "").toLowerCase().trim();
  }
  function searchAndSelect(q) {
    var nq = norm(q);
    if (!nq) return;
    var hit = nodes.find(function(n) { return norm(n.label) === nq || norm(n.id) === nq; });
    if (!hit) hit = nodes.find(function(n) { return norm(n.label).indexOf(nq) >= 0; });
    if (hit) selectNodeById(hit.id);
  }
  document.getElementById("btnSearch").addEventListener("click", function() {
    searchAndSelect(document.getElementById("searchBox").value);
  });
  document.getElementById("searchBox").addEventListener("keydown", function(ev) {
    if (ev.key === "Enter") searchAndSelect(ev.target.value);
  });
  document.getElementById("btnClear").addEventListener("click", function() {
    selectedId = null;
    renderSelection();
    clearInfo();
  });

  var labelsVisible = true;
  var btnToggle = document.getElementById("btnToggleLabels");
  function applyLabelsVisibility() {
    labelLayer.classed("hidden", !labelsVisible);
    edgeLabelLayer.classed("hidden", !labelsVisible);
  }
  btnToggle.addEventListener("click", function() {
    labelsVisible = !labelsVisible;
    btnToggle.textContent = labelsVisible ? "Hide labels" : "Show labels";
    applyLabelsVisibility();
  });
  applyLabelsVisibility();

  (function legend() {
    var L = d3.select("#legend");
    L.append("span").text("Colour by connections: ");
    var item = L.selectAll("span.item").data(LEGEND).join("span").attr("class", "item");
    item.append("span").attr("class", "swatch").style("background", function(d) { return d.color; });
    item.append("span").text(function(d) { return d.range; });
  }());

  function fit() {
    if (!nodes.length) return;
    var xs = nodes.map(function(d) { return d.x; }), ys = nodes.map(function(d) { return d.y; });
    var minX = Math.min.apply(null, xs), maxX = Math.max.apply(null, xs);
    var minY = Math.min.apply(null, ys), maxY = Math.max.apply(null, ys);
    var w = Math.max(1, maxX - minX), h = Math.max(1, maxY - minY);
    var margin = 40;
    var scale = Math.max(0.2, Math.min(3, Math.min((width - margin * 2) / w, (height - margin * 2) / h)));
    var tx = (width - scale * (minX + maxX)) / 2;
    var ty = (height - scale * (minY + maxY)) / 2;
    svg.transition().duration(600).call(zoom.transform, d3.zoomIdentity.translate(tx, ty).scale(scale));
  }
  fit();
  document.getElementById("btnFit").addEventListener("click", fit);

  new ResizeObserver(function() {
    var b = getBox();
    width = b.width;
    height = b.height;
    svg.attr("width", width).attr("height", height);
    fit();
  }).observe(document.getElementById("viz-container"));

  function heightFor(n) {
    if (n <= 12) return "auto";
    if (n <= 60) return "40vh";
    return "60vh";
  }

  function createTable(el, data, columns, initialSort) {
    var base = {
      data: data,
      layout: "fitColumns",
      responsiveLayout: "collapse",
      pagination: "local",
      paginationSize: 50,
      paginationSizeSelector: [10, 25, 50, 100, 200, 500],
      movableColumns: true,
      initialSort: initialSort,
      columns: columns
    };
    var height = heightFor(data.length);
    if (height !== "auto") base.height = height;
    return new Tabulator(el, base);
  }

  function numeric(title, field) {
    return { title: title, field: field, hozAlign: "right", sorter: "number", headerFilter: "input", tooltip: true };
  }

  (function vertexTable() {
    var t = createTable("#vertex-table", VERTEX_ROWS, [
      { title: "ID", field: "id", headerFilter: "input", tooltip: true },
      { title: "Name", field: "name", headerFilter: "input", widthGrow: 2, tooltip: true },
      numeric("Total publications", "total_publications"),
      numeric("Co-authored publications", "coauthored_publications"),
      numeric("Connections", "connections"),
      numeric("Co-authorship ratio (%)", "coauthorship_ratio"),
      { title: "Colour", field: "color", headerFilter: "input", tooltip: true }
    ], [{ column: "connections", dir: "desc" }]);
    document.getElementById("vertex-csv").onclick = function() { t.download("csv", "vertices.csv", { bom: true }); };
    document.getElementById("vertex-xlsx").onclick = function() { t.download("xlsx", "vertices.xlsx", { sheetName: "Vertices" }); };
  }());

  (function edgeTable() {
    var t = createTable("#edge-table", EDGE_ROWS, [
      { title: "Edge", field: "edge", headerFilter: "input", widthGrow: 3, tooltip: true },
      numeric("Weight", "weight"),
      numeric("Shared neighbours", "shared_neighbors")
    ], [{ column: "weight", dir: "desc" }, { column: "shared_neighbors", dir: "desc" }]);
    document.getElementById("edge-csv").onclick = function() { t.download("csv", "edges.csv", { bom: true }); };
    document.getElementById("edge-xlsx").onclick = function() { t.download("xlsx", "edges.xlsx", { sheetName: "Edges" }); };
  }());
</script>

</body>
</html>
`
