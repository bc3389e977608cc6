package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"antennacalc/internal/calc"
	"antennacalc/internal/charts"
	"antennacalc/internal/coax"
	"antennacalc/internal/metrics"
	"antennacalc/internal/models"
	"antennacalc/internal/reports"
	"antennacalc/internal/units"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"safeHTML": func(s string) template.HTML {
		return template.HTML(s)
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"num": func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	},
}).ParseFS(templateFS, "templates/*.html"))

// NavItem is one calculator link in the page header
type NavItem struct {
	Kind   models.Kind
	Title  string
	Path   string
	Active bool
}

// Option is a select option
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// OptionGroup is a labelled set of select options
type OptionGroup struct {
	Label   string
	Options []Option
}

// Field is one calculator form input
type Field struct {
	Name    string
	Label   string
	Type    string // number or select
	Value   string
	Step    string
	List    string
	Options []Option
}

// CoaxNodeRow is one feed-line row of the coax page
type CoaxNodeRow struct {
	ID       string
	State    string
	Label    string
	Quantity string
	Unit     string
}

// CoaxForm holds the feed-line editor state of the coax page
type CoaxForm struct {
	Power    string
	Nodes    []CoaxNodeRow
	Groups   []OptionGroup
	Selected string
	Quantity string
}

// PageData is the data of every HTML page
type PageData struct {
	Title    string
	Kind     models.Kind
	Nav      []NavItem
	Version  string
	Articles []models.Article

	Units    []Option
	Fields   []Field
	Presets  []models.Preset
	Coax     *CoaxForm
	Errors   []string
	Document *reports.Document
	Text     string
	Chart    template.HTML
	SavedURL string
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data PageData) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error("Failed to render page", err, map[string]interface{}{"page": name})
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func unitOptions(selected units.Unit) []Option {
	opts := make([]Option, 0, len(units.All))
	for _, u := range units.All {
		opts = append(opts, Option{Value: string(u), Label: u.Label(), Selected: u == selected})
	}
	return opts
}

// HandleCalculatorPage renders a calculator form and, when computable, its results
func (s *Server) HandleCalculatorPage(w http.ResponseWriter, r *http.Request) {
	kind, ok := models.ParseKind(r.PathValue("calculator"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	u := units.ParseOr(r.Form.Get("unit"), s.defaultUnit())
	data := PageData{
		Title:   kind.Title(),
		Kind:    kind,
		Nav:     navItems(kind),
		Version: s.Version,
		Units:   unitOptions(u),
		Presets: models.PresetsFor(kind),
	}

	start := time.Now()
	var (
		result models.Result
		err    error
	)
	if kind == models.KindCoax {
		var res models.CoaxResult
		data.Coax, res, data.Errors = s.coaxForm(r.Form)
		result = res
	} else {
		data.Fields, result, err = formCalculation(kind, r.Form)
	}
	s.observe(kind, err, start)

	if err != nil {
		data.Errors = append(data.Errors, calc.Messages(err)...)
		s.render(w, http.StatusOK, "calculator", data)
		return
	}

	doc, err := reports.Build(result, u)
	if err != nil {
		data.Errors = append(data.Errors, err.Error())
		s.render(w, http.StatusOK, "calculator", data)
		return
	}
	data.Document = &doc
	data.Text = doc.Text()
	data.Chart = s.pageChart(result)

	if r.Method == http.MethodPost && r.Form.Get("action") == "save" {
		saved, err := s.Reports.Save(r.Context(), result, u)
		if err != nil {
			s.Metrics.ObserveReport(string(kind), metrics.OutcomeError)
			s.log.Error("Failed to store report", err, map[string]interface{}{"calculator": string(kind)})
			data.Errors = append(data.Errors, "The report could not be saved.")
		} else {
			s.Metrics.ObserveReport(string(kind), metrics.OutcomeOK)
			data.SavedURL = "/files/" + saved.Folder + "/index.html"
		}
	}

	s.render(w, http.StatusOK, "calculator", data)
}

func (s *Server) pageChart(result models.Result) template.HTML {
	var (
		snippet charts.ChartSnippet
		err     error
	)
	switch r := result.(type) {
	case models.YagiResult:
		snippet, err = s.Charts.YagiLayoutSnippet(r)
	case models.CoaxResult:
		if len(r.Bands) == 0 {
			return ""
		}
		snippet, err = s.Charts.CoaxLossSnippet(r.Bands)
	default:
		return ""
	}
	if err != nil {
		s.log.Warn("Failed to build chart", map[string]interface{}{"error": err.Error()})
		return ""
	}
	return template.HTML(charts.EChartsCDN + snippet.HTML)
}

// formFloat reads a number accepting a decimal comma; unparsable text is NaN
func formFloat(form url.Values, name string, fallback float64) float64 {
	v := strings.TrimSpace(form.Get(name))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// formInt reads an integer; unparsable text is -1
func formInt(form url.Values, name string, fallback int) int {
	v := strings.TrimSpace(form.Get(name))
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return i
}

// shown keeps what the user typed, or the default
func shown(form url.Values, name string, fallback string) string {
	if v := strings.TrimSpace(form.Get(name)); v != "" {
		return v
	}
	return fallback
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func numberField(form url.Values, name, label string, value float64, step string) Field {
	return Field{Name: name, Label: label, Type: "number", Value: shown(form, name, num(value)), Step: step}
}

func selectField(name, label, selected string, options ...Option) Field {
	for i := range options {
		options[i].Selected = options[i].Value == selected
	}
	return Field{Name: name, Label: label, Type: "select", Value: selected, Options: options}
}

func frequencyField(form url.Values, value float64) Field {
	f := numberField(form, "frequency", "Frequency, MHz", value, "any")
	f.List = "presets"
	return f
}

// formCalculation parses the form of kind over its defaults and runs the calculator
func formCalculation(kind models.Kind, form url.Values) ([]Field, models.Result, error) {
	switch kind {
	case models.KindFlowerPot:
		in := models.DefaultFlowerPotInput()
		in.FrequencyMHz = formFloat(form, "frequency", in.FrequencyMHz)
		in.ResonanceShiftPercent = formFloat(form, "shift", in.ResonanceShiftPercent)
		in.VelocityFactor = formFloat(form, "vf", in.VelocityFactor)
		fields := []Field{
			frequencyField(form, in.FrequencyMHz),
			numberField(form, "shift", "Resonance shift, %", in.ResonanceShiftPercent, "any"),
			numberField(form, "vf", "Cable velocity factor", in.VelocityFactor, "0.01"),
		}
		r, err := run(in, calc.FlowerPot)
		return fields, r, err

	case models.KindGroundPlane:
		in := models.DefaultGroundPlaneInput()
		in.FrequencyMHz = formFloat(form, "frequency", in.FrequencyMHz)
		r, err := run(in, calc.GroundPlane)
		return []Field{frequencyField(form, in.FrequencyMHz)}, r, err

	case models.KindJPole:
		in := models.DefaultJPoleInput()
		in.FrequencyMHz = formFloat(form, "frequency", in.FrequencyMHz)
		in.WireDiameterMM = formFloat(form, "wire", in.WireDiameterMM)
		fields := []Field{
			frequencyField(form, in.FrequencyMHz),
			numberField(form, "wire", "Wire or tube diameter, mm", in.WireDiameterMM, "any"),
		}
		r, err := run(in, calc.JPole)
		return fields, r, err

	case models.KindYagi:
		in := models.DefaultYagiInput()
		in.FrequencyMHz = formFloat(form, "frequency", in.FrequencyMHz)
		in.Elements = formInt(form, "elements", in.Elements)
		in.BoomDiameterMM = formFloat(form, "boom", in.BoomDiameterMM)
		in.ElementDiameterMM = formFloat(form, "element_diameter", in.ElementDiameterMM)
		in.ElementThicknessMM = formFloat(form, "element_thickness", in.ElementThicknessMM)
		in.Mounting = models.MountingType(formInt(form, "mounting", int(in.Mounting)))
		in.DipoleForm = models.DipoleForm(shown(form, "dipole", string(in.DipoleForm)))
		in.BoomShape = models.BoomShape(shown(form, "boom_shape", string(in.BoomShape)))
		in.ElementShape = models.ElementShape(shown(form, "element_shape", string(in.ElementShape)))

		mountings := make([]Option, 0, 3)
		for _, m := range []models.MountingType{models.MountingBonded, models.MountingInsulated, models.MountingDielectric} {
			mountings = append(mountings, Option{Value: strconv.Itoa(int(m)), Label: m.Description()})
		}
		fields := []Field{
			frequencyField(form, in.FrequencyMHz),
			numberField(form, "elements", "Number of elements", float64(in.Elements), "1"),
			numberField(form, "boom", "Boom diameter, mm", in.BoomDiameterMM, "any"),
			numberField(form, "element_diameter", "Element diameter or width, mm", in.ElementDiameterMM, "any"),
			numberField(form, "element_thickness", "Flat element thickness, mm", in.ElementThicknessMM, "any"),
			selectField("mounting", "Mounting", strconv.Itoa(int(in.Mounting)), mountings...),
			selectField("dipole", "Driven element", string(in.DipoleForm),
				Option{Value: string(models.DipoleFolded), Label: "Folded dipole"},
				Option{Value: string(models.DipoleSplit), Label: "Split dipole"}),
			selectField("boom_shape", "Boom cross-section", string(in.BoomShape),
				Option{Value: string(models.BoomSquare), Label: "Square"},
				Option{Value: string(models.BoomRound), Label: "Round"}),
			selectField("element_shape", "Element shape", string(in.ElementShape),
				Option{Value: string(models.ElementRound), Label: "Round"},
				Option{Value: string(models.ElementFlat), Label: "Flat"}),
		}
		r, err := run(in, calc.Yagi)
		return fields, r, err

	case models.KindKharchenko:
		in := models.DefaultKharchenkoInput()
		in.FrequencyMHz = formFloat(form, "frequency", in.FrequencyMHz)
		in.ImpedanceOhm = formInt(form, "impedance", in.ImpedanceOhm)
		fields := []Field{
			frequencyField(form, in.FrequencyMHz),
			selectField("impedance", "Input impedance", strconv.Itoa(in.ImpedanceOhm),
				Option{Value: "50", Label: "50 Ω"},
				Option{Value: "75", Label: "75 Ω"}),
		}
		r, err := run(in, calc.Kharchenko)
		return fields, r, err

	default:
		return nil, nil, fmt.Errorf("unknown calculator %q", kind)
	}
}

// nodeState encodes a feed-line node into a hidden form value
func nodeState(n models.Node) string {
	return n.ID + "|" + n.ComponentID + "|" + num(n.Quantity)
}

func parseNodeState(raw string) (id, componentID string, quantity float64, ok bool) {
	parts := strings.SplitN(raw, "|", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return "", "", 0, false
	}
	return parts[0], parts[1], coax.ParseQuantity(parts[2]), true
}

// coaxForm rebuilds the feed line from the form and applies the requested edit
func (s *Server) coaxForm(form url.Values) (*CoaxForm, models.CoaxResult, []string) {
	var messages []string

	session := coax.NewSession(s.Catalog, 0)
	power := formFloat(form, "power", s.Config.DefaultPower)
	if err := session.SetPower(power); err != nil {
		messages = append(messages, err.Error())
	}

	for _, raw := range form["node"] {
		id, componentID, qty, ok := parseNodeState(raw)
		if !ok {
			continue
		}
		if _, err := session.Restore(id, componentID, qty); err != nil {
			messages = append(messages, err.Error())
		}
	}
	for _, n := range session.Nodes() {
		if v, ok := form["qty_"+n.ID]; ok && len(v) > 0 {
			session.UpdateQuantity(n.ID, v[0])
		}
	}

	if id := form.Get("remove"); id != "" {
		if err := session.RemoveNode(id); err != nil {
			messages = append(messages, err.Error())
		}
	}

	cf := &CoaxForm{
		Power:    shown(form, "power", num(s.Config.DefaultPower)),
		Selected: form.Get("component"),
		Quantity: form.Get("quantity"),
	}
	if form.Get("action") == "add" {
		if _, err := session.AddNode(form.Get("component"), coax.ParseQuantity(form.Get("quantity"))); err != nil {
			messages = append(messages, err.Error())
		} else {
			cf.Quantity = ""
		}
	}

	for _, n := range session.Nodes() {
		cf.Nodes = append(cf.Nodes, CoaxNodeRow{
			ID:       n.ID,
			State:    nodeState(n),
			Label:    n.Label,
			Quantity: num(n.Quantity),
			Unit:     n.Type.QuantityUnit(),
		})
	}
	for _, g := range s.Catalog.Groups() {
		og := OptionGroup{Label: g.Key}
		for _, c := range g.Components {
			og.Options = append(og.Options, Option{Value: c.ID, Label: c.Label(), Selected: c.ID == cf.Selected})
		}
		cf.Groups = append(cf.Groups, og)
	}

	return cf, session.Result(), messages
}
