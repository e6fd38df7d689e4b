package schema

// FieldTaskType is the id of the task selector field.
const FieldTaskType = "task_type"

func opts(values ...string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}

// formSteps is the whole form, in rendering/collection order.
var formSteps = []Step{
	{
		ID:    "task",
		Title: "Jenis Tugas",
		Fields: []Field{
			{
				ID:    FieldTaskType,
				Label: "Apa yang ingin Anda buat?",
				Kind:  KindButtons,
				Options: []Option{
					{Value: "document", Label: "Dokumen", Description: "SOP, riset brief, artikel, spesifikasi"},
					{Value: "agent", Label: "Agen AI", Description: "Asisten otonom dengan pemicu dan kriteria sukses"},
					{Value: "application", Label: "Aplikasi", Description: "Prototipe aplikasi dengan fitur dan data model"},
				},
				Required: true,
				Default:  "document",
			},
		},
	},
	{
		ID:     "need",
		Title:  "Kebutuhan",
		ShowIf: &ShowIf{Field: FieldTaskType, Value: "document"},
		Fields: []Field{
			{ID: "goal", Label: "Tujuan", Kind: KindTextArea, Required: true, HelperText: "Contoh: tulis SOP, buat riset brief, desain API, skrip presentasi"},
			{ID: "audience", Label: "Audiens", Kind: KindText, HelperText: "Profil & tingkat teknis audiens. Contoh: Developer Senior, Manajer Produk non-teknis"},
			{ID: "context", Label: "Konteks/Domain", Kind: KindTextArea, HelperText: "Ringkasan domain/kendala. Contoh: Data keuangan, regulasi GDPR, brand voice ceria"},
			{ID: "constraints", Label: "Batasan & Format", Kind: KindTextArea, HelperText: "Panjang target, gaya, larangan, format keluaran. Contoh: Maksimal 500 kata, format Markdown"},
		},
	},
	{
		ID:     "agent",
		Title:  "Spesifikasi Agen",
		ShowIf: &ShowIf{Field: FieldTaskType, Value: "agent"},
		Fields: []Field{
			{ID: "agent_goal", Label: "Tujuan Agen", Kind: KindTextArea, Required: true, HelperText: "Apa yang harus dicapai agen ini?"},
			{ID: "agent_context", Label: "Konteks Operasi", Kind: KindTextArea, HelperText: "Lingkungan, sistem, dan data yang tersedia bagi agen"},
			{ID: "agent_triggers", Label: "Pemicu", Kind: KindTextArea, HelperText: "Kapan agen mulai bekerja? Contoh: email masuk, jadwal harian"},
			{ID: "agent_success_criteria", Label: "Kriteria Sukses", Kind: KindTextArea, HelperText: "Bagaimana keberhasilan agen diukur?"},
		},
	},
	{
		ID:     "app",
		Title:  "Spesifikasi Aplikasi",
		ShowIf: &ShowIf{Field: FieldTaskType, Value: "application"},
		Fields: []Field{
			{ID: "app_description", Label: "Deskripsi Aplikasi", Kind: KindTextArea, Required: true, HelperText: "Aplikasi apa yang ingin Anda bangun?"},
			{ID: "app_features", Label: "Fitur Utama", Kind: KindTextArea, HelperText: "Daftar fitur inti, satu per baris"},
			{ID: "app_data_model", Label: "Model Data", Kind: KindTextArea, HelperText: "Entitas utama dan relasinya"},
			{ID: "app_tech_stack", Label: "Teknologi", Kind: KindTextArea, HelperText: "Bahasa, framework, atau platform yang diinginkan"},
		},
	},
	{
		ID:    "prefs",
		Title: "Preferensi",
		Fields: []Field{
			{ID: "language", Label: "Bahasa", Kind: KindSelect, Options: opts("id", "en"), Default: "id"},
			{ID: "need_citations", Label: "Butuh Sitasi?", Kind: KindToggle},
			{ID: "creativity_level", Label: "Tingkat Kreativitas", Kind: KindRadio, Options: opts("rendah", "sedang", "tinggi"), Default: "sedang"},
			{ID: "risk_tolerance", Label: "Toleransi Risiko", Kind: KindRadio, Options: opts("rendah", "sedang", "tinggi"), Default: "sedang"},
			{ID: "tools_available", Label: "Alat Tersedia", Kind: KindCheckbox, Options: opts("web_search", "calculator", "rag", "function_calling")},
		},
	},
}

// taskFields maps each task type to its task-specific field ids. These are
// the fields reset to defaults when the task type changes away from the type,
// and they double as the extraction schema for auto-fill.
var taskFields = map[TaskType][]string{
	TaskDocument:    {"goal", "audience", "context", "constraints"},
	TaskAgent:       {"agent_goal", "agent_context", "agent_triggers", "agent_success_criteria"},
	TaskApplication: {"app_description", "app_features", "app_data_model", "app_tech_stack"},
}

// Steps returns every step in order, visible or not.
func Steps() []Step { return formSteps }

// StepsFor returns the steps visible for a task type, assuming only the
// task selector gates visibility. Field-level predicates still apply.
func StepsFor(t TaskType) []Step {
	out := make([]Step, 0, len(formSteps))
	for _, s := range formSteps {
		if s.ShowIf != nil && s.ShowIf.Field == FieldTaskType && s.ShowIf.Value != string(t) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// TaskFields returns the task-specific field ids for a task type.
func TaskFields(t TaskType) []string {
	ids := taskFields[t]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// ExtractionFields returns the ordered extraction schema for a task type:
// the string fields an auto-fill strategy must return, empty when unknown.
func ExtractionFields(t TaskType) []string { return TaskFields(t) }

// FieldByID looks a field definition up across all steps.
func FieldByID(id string) (Field, bool) {
	for _, s := range formSteps {
		for _, f := range s.Fields {
			if f.ID == id {
				return f, true
			}
		}
	}
	return Field{}, false
}

// AllFields returns every field definition in form order.
func AllFields() []Field {
	var out []Field
	for _, s := range formSteps {
		out = append(out, s.Fields...)
	}
	return out
}
