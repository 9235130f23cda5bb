package simulation

import (
	"time"

	"github.com/shenikar/chennai_live_alerts/internal/models"
)

type seedAlert struct {
	id         string
	title      string
	titleEn    string
	message    string
	messageEn  string
	severity   models.Severity
	minutesAgo int
	source     string
	areas      []string
	pincodes   []string
}

var seedSet = []seedAlert{
	{
		id:         "seed-heavy-rain-mylapore",
		title:      "கனமழை எச்சரிக்கை",
		titleEn:    "Heavy rain warning",
		message:    "அடுத்த 3 மணி நேரத்தில் மயிலாப்பூர் பகுதியில் கனமழை எதிர்பார்க்கப்படுகிறது.",
		messageEn:  "Heavy rain expected around Mylapore in the next 3 hours.",
		severity:   models.SeverityHigh,
		minutesAgo: 12,
		source:     "IMD Chennai",
		areas:      []string{"Mylapore", "Mandaveli"},
		pincodes:   []string{"600004", "600028"},
	},
	{
		id:         "seed-waterlogging-velachery",
		title:      "வேளச்சேரியில் நீர் தேக்கம்",
		titleEn:    "Waterlogging in Velachery",
		message:    "வேளச்சேரி பிரதான சாலையில் முழங்கால் அளவு நீர். மாற்றுப் பாதையைப் பயன்படுத்தவும்.",
		messageEn:  "Knee-deep water on Velachery Main Road. Use alternate routes.",
		severity:   models.SeverityCritical,
		minutesAgo: 25,
		source:     "Greater Chennai Corporation",
		areas:      []string{"Velachery", "Taramani"},
		pincodes:   []string{"600042", "600113"},
	},
	{
		id:         "seed-power-cut-adyar",
		title:      "திட்டமிட்ட மின்தடை",
		titleEn:    "Scheduled power cut",
		message:    "பராமரிப்பு பணிக்காக அடையாறில் காலை 9 முதல் மதியம் 2 வரை மின்தடை.",
		messageEn:  "Power shutdown in Adyar from 9 AM to 2 PM for maintenance.",
		severity:   models.SeverityMedium,
		minutesAgo: 47,
		source:     "TANGEDCO",
		areas:      []string{"Adyar", "Besant Nagar"},
		pincodes:   []string{"600020", "600090"},
	},
	{
		id:         "seed-traffic-tnagar",
		title:      "தி.நகரில் போக்குவரத்து நெரிசல்",
		titleEn:    "Traffic congestion in T. Nagar",
		message:    "பண்டிகை கூட்டம் காரணமாக ரங்கநாதன் தெருவில் கடும் நெரிசல்.",
		messageEn:  "Heavy congestion on Ranganathan Street due to festival crowds.",
		severity:   models.SeverityLow,
		minutesAgo: 65,
		source:     "Chennai Traffic Police",
		areas:      []string{"T. Nagar"},
		pincodes:   []string{"600017"},
	},
	{
		id:         "seed-cyclone-watch",
		title:      "புயல் கண்காணிப்பு",
		titleEn:    "Cyclone watch",
		message:    "வங்கக் கடலில் காற்றழுத்த தாழ்வு நிலை. கடலோர மக்கள் விழிப்புடன் இருக்கவும்.",
		messageEn:  "Depression over the Bay of Bengal. Coastal residents stay alert.",
		severity:   models.SeverityCritical,
		minutesAgo: 90,
		source:     "Tamil Nadu State Disaster Management Authority",
		areas:      []string{"Marina", "Besant Nagar", "Thiruvanmiyur", "Ennore"},
		pincodes:   []string{"600005", "600090", "600041", "600057"},
	},
	{
		id:         "seed-water-supply-anna-nagar",
		title:      "குடிநீர் விநியோகம் நிறுத்தம்",
		titleEn:    "Water supply suspended",
		message:    "குழாய் பழுது காரணமாக அண்ணா நகரில் இன்று குடிநீர் விநியோகம் இல்லை.",
		messageEn:  "No water supply in Anna Nagar today due to pipeline repair.",
		severity:   models.SeverityMedium,
		minutesAgo: 140,
		source:     "Chennai Metro Water",
		areas:      []string{"Anna Nagar"},
		pincodes:   []string{"600040"},
	},
	{
		id:         "seed-metro-delay",
		title:      "மெட்ரோ ரயில் தாமதம்",
		titleEn:    "Metro services delayed",
		message:    "தொழில்நுட்ப கோளாறு காரணமாக நீல வழித்தடத்தில் 10 நிமிட தாமதம்.",
		messageEn:  "Blue line running 10 minutes late due to a technical fault.",
		severity:   models.SeverityLow,
		minutesAgo: 210,
		source:     "Chennai Metro Rail",
		areas:      []string{"Guindy", "Alandur", "George Town"},
		pincodes:   []string{"600032", "600016", "600001"},
	},
}

// seedAlerts строит детерминированный набор оповещений. Смещения "минут назад"
// превращаются в абсолютное время в момент генерации.
func seedAlerts(now time.Time) []models.Alert {
	alerts := make([]models.Alert, 0, len(seedSet))
	for _, s := range seedSet {
		alerts = append(alerts, models.Alert{
			ID:            s.id,
			Title:         s.title,
			TitleEn:       s.titleEn,
			Message:       s.message,
			MessageEn:     s.messageEn,
			Severity:      s.severity,
			Timestamp:     now.Add(-time.Duration(s.minutesAgo) * time.Minute).UTC(),
			Source:        s.source,
			AffectedAreas: append([]string(nil), s.areas...),
			Pincodes:      append([]string(nil), s.pincodes...),
			IsActive:      true,
		})
	}
	return alerts
}
