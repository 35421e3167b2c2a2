package render

// Palette
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbRoad       = RGB{36, 40, 59} // Slightly lifted road surface
	RgbRoadEdge   = RGB{122, 162, 247}
	RgbLaneMark   = RGB{86, 95, 137}

	RgbMail       = RGB{253, 224, 71} // Envelope yellow
	RgbSalt       = RGB{240, 240, 255}
	RgbSnail      = RGB{158, 206, 106}
	RgbSnailHit   = RGB{255, 80, 80}
	RgbSnailShade = RGB{60, 60, 70}

	RgbBurstCollect = RGB{253, 224, 71}
	RgbBurstHazard  = RGB{255, 100, 60}
	RgbPopup        = RGB{253, 224, 71}

	RgbHUDText   = RGB{255, 255, 255}
	RgbScore     = RGB{253, 224, 71}
	RgbCombo     = RGB{251, 146, 60}
	RgbBest      = RGB{196, 181, 253}
	RgbBarEmpty  = RGB{60, 60, 70}
	RgbHitBorder = RGB{180, 40, 40}

	RgbOverlayBg    = RGB{10, 10, 14}
	RgbPauseTitle   = RGB{253, 224, 71}
	RgbGameOver     = RGB{239, 68, 68}
	RgbHint         = RGB{156, 163, 175}
	RgbRestart      = RGB{22, 163, 74}
	RgbNewHighScore = RGB{192, 132, 252}

	RgbStatusText = RGB{180, 180, 180}
	RgbHandOn     = RGB{144, 238, 144}
	RgbDebug      = RGB{120, 120, 140}
)

var (
	rgbHealthLow  = RGB{239, 68, 68}
	rgbHealthMid  = RGB{234, 179, 8}
	rgbHealthHigh = RGB{34, 197, 94}
)

// HealthColor returns the gauge color for a health fraction, red through yellow to green
func HealthColor(fraction float64) RGB {
	switch {
	case fraction <= 0:
		return rgbHealthLow
	case fraction >= 1:
		return rgbHealthHigh
	case fraction < 0.5:
		return rgbHealthLow.Blend(rgbHealthMid, fraction*2)
	default:
		return rgbHealthMid.Blend(rgbHealthHigh, (fraction-0.5)*2)
	}
}
