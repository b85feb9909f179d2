package pricing

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<style>
body { font-family: sans-serif; background: #f0f0f0; margin: 2rem; }
form { display: grid; grid-template-columns: max-content 12rem; gap: .5rem 1rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Description}}</p>
<form method="post" action="/configure">
  <label for="material">Material</label>
  <select id="material" name="material">
    {{range .Materials}}<option value="{{.}}">{{.}}</option>{{end}}
  </select>
  <label for="surface_treatment">Surface Treatment</label>
  <select id="surface_treatment" name="surface_treatment">
    {{range .Treatments}}<option value="{{.}}">{{.}}</option>{{end}}
  </select>
  <label for="length">Length (mm)</label>
  <input id="length" name="length" type="number" step="0.1" min="{{.MinDimension}}" max="{{.MaxDimension}}" value="{{.Defaults.Length}}">
  <label for="width">Width (mm)</label>
  <input id="width" name="width" type="number" step="0.1" min="{{.MinDimension}}" max="{{.MaxDimension}}" value="{{.Defaults.Width}}">
  <label for="thickness">Thickness (mm)</label>
  <input id="thickness" name="thickness" type="number" step="0.1" min="{{.MinDimension}}" max="{{.MaxDimension}}" value="{{.Defaults.Thickness}}">
  <label for="hole_diameter">Hole Diameter (mm)</label>
  <input id="hole_diameter" name="hole_diameter" type="number" step="0.1" min="0" max="{{.MaxDimension}}" value="{{.Defaults.HoleDiameter}}">
  <label for="quantity">Quantity</label>
  <input id="quantity" name="quantity" type="number" min="1" max="{{.MaxQuantity}}" value="1">
  <span></span>
  <button type="submit">Get Quote</button>
</form>
</body>
</html>
`
