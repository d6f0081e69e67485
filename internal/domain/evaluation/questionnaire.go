package evaluation

// The two questionnaire revisions shipped so far. Revision 1 is the 4-point
// option scale weighted out of 10; revision 2 moved to a 1-5 scale with
// percentage weights. Both are seeded into storage on first boot; the active
// one is whatever the questionnaires table marks active.

func RevisionOne() Questionnaire {
	options := []Option{
		{Label: "Não Atende", Value: 0},
		{Label: "Em Desenvolvimento", Value: 5},
		{Label: "Atende Expectativas", Value: 8},
		{Label: "Supera Expectativas", Value: 10},
	}
	return Questionnaire{
		Revision: 1,
		Questions: []Question{
			{
				ID:          "q1",
				Text:        "Assiduidade e Pontualidade",
				Description: "Cumpre a jornada de trabalho conforme o contrato, evitando faltas e atrasos injustificados.",
				Weight:      3,
				Options:     options,
			},
			{
				ID:          "q2",
				Text:        "Produtividade e Qualidade",
				Description: "Desenvolve as tarefas com precisão, organização e dentro dos prazos estabelecidos.",
				Weight:      3,
				Options:     options,
			},
			{
				ID:          "q3",
				Text:        "Proatividade e Iniciativa",
				Description: "Demonstra interesse em aprender, busca novos conhecimentos e antecipa necessidades do setor.",
				Weight:      2,
				Options:     options,
			},
			{
				ID:          "q4",
				Text:        "Relacionamento e Trabalho em Equipe",
				Description: "Relaciona-se de forma cordial e profissional com colegas e supervisores.",
				Weight:      2,
				Options:     options,
			},
		},
	}
}

func RevisionTwo() Questionnaire {
	options := []Option{
		{Label: "Insuficiente", Value: 1},
		{Label: "Abaixo do Esperado", Value: 2},
		{Label: "Regular", Value: 3},
		{Label: "Bom", Value: 4},
		{Label: "Excelente", Value: 5},
	}
	return Questionnaire{
		Revision: 2,
		Questions: []Question{
			{
				ID:      "q1",
				Text:    "Assiduidade e Pontualidade",
				Weight:  30,
				Options: options,
			},
			{
				ID:      "q2",
				Text:    "Produtividade e Qualidade",
				Weight:  25,
				Options: options,
			},
			{
				ID:      "q3",
				Text:    "Proatividade e Iniciativa",
				Weight:  20,
				Options: options,
			},
			{
				ID:      "q4",
				Text:    "Relacionamento e Trabalho em Equipe",
				Weight:  15,
				Options: options,
			},
			{
				ID:      "q5",
				Text:    "Evolução no Programa de Aprendizagem",
				Weight:  10,
				Options: options,
			},
		},
	}
}

func BuiltinRevisions() []Questionnaire {
	return []Questionnaire{RevisionOne(), RevisionTwo()}
}
