package constant

// Order lifecycle statuses. Values are kept in French to stay wire-compatible
// with the seeded warehouse data and the operator frontend.
const (
	OrderStatusPending    = "en attente"
	OrderStatusProcessing = "en cours"
	OrderStatusCompleted  = "terminée"
)

const (
	// DefaultDepotName receives orders created through the chatbot.
	DefaultDepotName = "Dépôt Central"

	// DefaultClientPassword backs the dummy user created alongside a
	// chatbot-registered client.
	DefaultClientPassword = "pass123"
)

// Chat intent classifications returned by the receptionist model.
const (
	ChatIntentOrder    = "order"
	ChatIntentRegister = "register"
	ChatIntentChat     = "chat"
)

const (
	// SessionHistoryWindow is the number of recent turns included in the
	// receptionist prompt.
	SessionHistoryWindow = 6

	// RuleRetrievalTopK is the number of knowledge snippets fetched per
	// arrival decision.
	RuleRetrievalTopK = 5
)

// User-facing messages for the gate and chatbot flows.
const (
	HoldMessage  = "No license plate detected in the image."
	HoldAnalysis = "Vehicle arrived but plate recognition failed. Manual check required."

	// NoActiveOrderSentinel replaces the facts summary when no record matches
	// the detected plate.
	NoActiveOrderSentinel = "Aucune commande active trouvée pour cette plaque."

	ModelUnparsableMessage = "Problème technique avec le modèle local."

	AccountCreatedSuffix  = " (Compte créé)"
	EntityNotFoundSuffix  = " (Erreur: Client ou Produit non trouvé)"
	UnknownClientFallback = "Inconnu"
)
