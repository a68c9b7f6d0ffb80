package models

// PetitionRecord is one row of the current-semester petitions file after
// normalization and identifier cleaning. RowID is a synthetic id assigned at
// load time; it stays stable even when invalid rows around it are dropped, so
// decision keys survive filtering.
type PetitionRecord struct {
	RowID     int    `json:"row_id"`
	NUSP      int    `json:"nusp"`
	Name      string `json:"nome"`
	Problem   string `json:"problema"`
	Link      string `json:"link_requerimento"`
	StudyPlan string `json:"plano_estudo"`
}

// HistoricalRecord is one row of the consolidated (historical) file.
type HistoricalRecord struct {
	NUSP    int    `json:"nusp"`
	Course  string `json:"disciplina"`
	Year    string `json:"ano"`
	Term    string `json:"semestre"`
	Problem string `json:"problema"`
	Outcome string `json:"parecer"`
}

// MergedRecord is one pair of the inner join between current petitions and
// historical records sharing the same NUSP. A petition with three historical
// rows yields three MergedRecords.
type MergedRecord struct {
	Petition PetitionRecord   `json:"requerimento"`
	History  HistoricalRecord `json:"historico"`
}
