package forecast

// Canonical model names. They double as registry keys and as the public
// identifiers the API accepts when a specific model is requested.
const (
	ModelSMA         = "Media Móvil Simple (SMA)"
	ModelSES         = "Suavizado Exponencial Simple (SES)"
	ModelHoltWinters = "Holt-Winters (Triple Exponencial)"
	ModelARIMA       = "ARIMA (AutoRegressive Integrated Moving Average)"
	ModelLinear      = "Regresión Lineal"
)

// ModelInfo is the methodological card shown alongside each model's results.
type ModelInfo struct {
	Equation    string `json:"equation"`
	Description string `json:"description"`
	BestFor     string `json:"best_for"`
	Limitations string `json:"limitations"`
	Parameters  string `json:"parameters"`
}

var modelDescriptions = map[string]ModelInfo{
	ModelSMA: {
		Equation:    "ŷ_t = (y_{t-1} + y_{t-2} + ... + y_{t-n}) / n",
		Description: "Promedia los últimos n valores para predecir el siguiente.",
		BestFor:     "Series con tendencia suave y sin estacionalidad fuerte.",
		Limitations: "No captura tendencias o estacionalidad. Retraso en los puntos de cambio.",
		Parameters:  "n (ventana de promedio)",
	},
	ModelSES: {
		Equation:    "ŷ_t = α * y_{t-1} + (1-α) * ŷ_{t-1}",
		Description: "Asigna pesos exponencialmente decrecientes a observaciones pasadas.",
		BestFor:     "Series sin tendencia o estacionalidad clara.",
		Limitations: "No adecuado para datos con tendencia o estacionalidad.",
		Parameters:  "α (factor de suavizado, 0-1)",
	},
	ModelHoltWinters: {
		Equation:    "Nivel: l_t = α(y_t - s_{t-m}) + (1-α)(l_{t-1} + b_{t-1})\nTendencia: b_t = β(l_t - l_{t-1}) + (1-β)b_{t-1}\nEstacionalidad: s_t = γ(y_t - l_{t-1} - b_{t-1}) + (1-γ)s_{t-m}",
		Description: "Modela nivel, tendencia y estacionalidad con tres ecuaciones de suavizado.",
		BestFor:     "Series con tendencia y estacionalidad claras.",
		Limitations: "Sensible a la elección de parámetros. Requiere múltiples ciclos estacionales.",
		Parameters:  "α, β, γ (factores de suavizado), m (períodos estacionales)",
	},
	ModelARIMA: {
		Equation:    "y′_t = c + φ₁y′_{t-1} + ... + φₚy′_{t-𝑝} + θ₁ε_{t-1} + ... + θ𝑞ε_{t-𝑞} + ε_t",
		Description: "Combina componentes autoregresivos (AR), diferenciación (I) y media móvil (MA).",
		BestFor:     "Series estacionarias o que pueden hacerse estacionarias mediante diferenciación.",
		Limitations: "Complejidad en la selección de parámetros (p,d,q).",
		Parameters:  "p (orden AR), d (grado de diferenciación), q (orden MA)",
	},
	ModelLinear: {
		Equation:    "y = β₀ + β₁x₁ + β₂x₂ + ... + βₚxₚ + ε",
		Description: "Modela la relación lineal entre variables independientes y la variable dependiente.",
		BestFor:     "Cuando existe una relación lineal clara entre el tiempo y la demanda.",
		Limitations: "Asume linealidad. No captura relaciones no lineales o estacionalidad compleja.",
		Parameters:  "Coeficientes β para cada variable predictora",
	},
}

// Describe returns the methodological card for a model name.
func Describe(name string) (ModelInfo, bool) {
	info, ok := modelDescriptions[name]
	return info, ok
}

// Descriptions returns a copy of every model card keyed by model name.
func Descriptions() map[string]ModelInfo {
	out := make(map[string]ModelInfo, len(modelDescriptions))
	for name, info := range modelDescriptions {
		out[name] = info
	}
	return out
}
