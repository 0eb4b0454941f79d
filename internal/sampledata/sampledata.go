// Package sampledata contiene los datos de muestra que sirven las páginas
// cuando una lectura del almacén falla. La decisión de usarlos vive en los
// handlers, no en la capa de acceso a datos.
package sampledata

import "medisupply-api/internal/models"

// Products devuelve el catálogo de muestra.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "sample-1",
			Name:        "Digital Blood Pressure Monitor",
			Category:    models.CategoryEquipment,
			SKU:         "BP-001",
			Price:       299.99,
			Description: "Accurate digital blood pressure monitoring device",
			Specifications: map[string]string{
				"Display":   "Large LCD display",
				"Memory":    "99 readings memory",
				"Power":     "4x AA batteries",
				"Cuff Size": "22-42 cm",
			},
			Image:         "/api/placeholder/300/300",
			InStock:       true,
			StockQuantity: 50,
		},
		{
			ID:          "sample-2",
			Name:        "Paracetamol 500mg Tablets",
			Category:    models.CategoryMedicines,
			SKU:         "MED-001",
			Price:       12.99,
			Description: "Pain relief and fever reduction tablets",
			Specifications: map[string]string{
				"Active Ingredient": "Paracetamol 500mg",
				"Pack Size":         "100 tablets",
				"Dosage":            "1-2 tablets every 4-6 hours",
				"Storage":           "Store below 25°C",
			},
			Image:         "/api/placeholder/300/300",
			InStock:       true,
			StockQuantity: 200,
		},
		{
			ID:          "sample-3",
			Name:        "Surgical Gloves - Latex Free",
			Category:    models.CategorySurgical,
			SKU:         "SG-001",
			Price:       24.99,
			Description: "Powder-free surgical gloves for medical procedures",
			Specifications: map[string]string{
				"Material": "Nitrile",
				"Size":     "Medium",
				"Powder":   "Powder-free",
				"Sterile":  "Yes",
				"Count":    "100 pairs per box",
			},
			Image:         "/api/placeholder/300/300",
			InStock:       true,
			StockQuantity: 100,
		},
		{
			ID:          "sample-4",
			Name:        "COVID-19 Rapid Test Kit",
			Category:    models.CategoryDiagnostics,
			SKU:         "RT-001",
			Price:       89.99,
			Description: "Rapid antigen test for COVID-19 detection",
			Specifications: map[string]string{
				"Test Type":    "Antigen",
				"Result Time":  "15 minutes",
				"Accuracy":     "95%+",
				"Storage":      "2-30°C",
				"Kit Contents": "Test device, buffer, swab",
			},
			Image:         "/api/placeholder/300/300",
			InStock:       true,
			StockQuantity: 75,
		},
	}
}

// Partners devuelve las empresas asociadas de muestra.
func Partners() []models.Partner {
	return []models.Partner{
		{ID: "sample-1", Name: "Johnson & Johnson", Logo: "/api/placeholder/200/100", Description: "Global healthcare company", Category: "Pharmaceuticals", PartnershipYears: 8},
		{ID: "sample-2", Name: "Pfizer Inc.", Logo: "/api/placeholder/200/100", Description: "Leading pharmaceutical corporation", Category: "Pharmaceuticals", PartnershipYears: 6},
		{ID: "sample-3", Name: "Medtronic", Logo: "/api/placeholder/200/100", Description: "Medical technology company", Category: "Medical Devices", PartnershipYears: 5},
		{ID: "sample-4", Name: "Siemens Healthineers", Logo: "/api/placeholder/200/100", Description: "Medical technology solutions", Category: "Medical Devices", PartnershipYears: 7},
		{ID: "sample-5", Name: "GE Healthcare", Logo: "/api/placeholder/200/100", Description: "Healthcare technology company", Category: "Medical Devices", PartnershipYears: 4},
		{ID: "sample-6", Name: "Baxter International", Logo: "/api/placeholder/200/100", Description: "Healthcare products and services", Category: "Healthcare Products", PartnershipYears: 9},
	}
}

// Testimonials devuelve las reseñas de muestra.
func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:       "sample-1",
			Name:     "Dr. Sarah Johnson",
			Position: "Chief Medical Officer",
			Company:  "City General Hospital",
			Content:  "MediSupply has been our trusted partner for over 5 years. Their quality products and reliable service have been instrumental in our patient care.",
			Rating:   5,
			Image:    "/api/placeholder/80/80",
		},
		{
			ID:       "sample-2",
			Name:     "Michael Chen",
			Position: "Procurement Manager",
			Company:  "Regional Medical Center",
			Content:  "The compliance and quality standards maintained by MediSupply are exceptional. We never have to worry about regulatory issues with their products.",
			Rating:   5,
			Image:    "/api/placeholder/80/80",
		},
		{
			ID:       "sample-3",
			Name:     "Dr. Emily Rodriguez",
			Position: "Director of Pharmacy",
			Company:  "University Hospital",
			Content:  "Their pharmaceutical products are consistently high quality and their supply chain management is outstanding. Highly recommended.",
			Rating:   5,
			Image:    "/api/placeholder/80/80",
		},
	}
}

// Team devuelve el equipo de muestra.
func Team() []models.TeamMember {
	return []models.TeamMember{
		{ID: "sample-1", Name: "Dr. Sarah Johnson", Position: "Chief Medical Officer", Image: "/api/placeholder/300/300", Bio: "20+ years in pharmaceutical industry"},
		{ID: "sample-2", Name: "Michael Chen", Position: "Operations Director", Image: "/api/placeholder/300/300", Bio: "Expert in supply chain management"},
		{ID: "sample-3", Name: "Dr. Emily Rodriguez", Position: "Quality Assurance Lead", Image: "/api/placeholder/300/300", Bio: "Specialist in regulatory compliance"},
	}
}
