package locale

// Language is a supported message language code.
type Language string

const (
	// EN is English.
	EN Language = "en"
	// KA is Georgian.
	KA Language = "ka"
	// SV is Swedish.
	SV Language = "sv"
)

// Languages contains all supported language codes.
var Languages = []Language{EN, KA, SV}

// Default is used when no language is configured.
const Default = EN

const (
	keyMissingBaseURL      = "MissingBaseURL"
	keyInvalidBaseURL      = "InvalidBaseURL"
	keyInvalidProtocol     = "InvalidProtocol"
	keyUnsupportedLanguage = "UnsupportedLanguage"
	keySessionExpired      = "SessionExpired"
	keyInvalidGetData      = "InvalidGetData"
	keyRequestFailed       = "RequestFailed"
)

var translations = map[Language]map[string]string{
	EN: {
		keyMissingBaseURL:      "Missing baseURL: You must provide a valid API base URL.",
		keyInvalidBaseURL:      `Invalid baseURL: "%s". It must be a well-formed absolute URL starting with "http://" or "https://".`,
		keyInvalidProtocol:     `Invalid baseURL protocol: "%s". Only HTTP(S) URLs are supported (e.g. "https://api.example.com" or "http://localhost:3000").`,
		keyUnsupportedLanguage: `Unsupported language: "%s". Supported languages: en, ka, sv.`,
		keySessionExpired:      "Your session either has expired or is invalid. Please login again.",
		keyInvalidGetData:      "Invalid method call. Can't pass data to %s request.",
		keyRequestFailed:       "Request failed with status %d.",
	},
	KA: {
		keyMissingBaseURL:      "baseURL არ არის მითითებული. გთხოვთ მიუთითოთ სწორი API მისამართი.",
		keyInvalidBaseURL:      `არასწორი baseURL: "%s". საჭიროა სწორი URL მისამართი, რომელიც იწყება http:// ან https://.`,
		keyInvalidProtocol:     `არასწორი პროტოკოლი baseURL-ში: "%s". მხარდაჭერილია მხოლოდ HTTP(S) (მაგ: "https://api.example.com" ან "http://localhost:3000").`,
		keyUnsupportedLanguage: `მხარდაუჭერელი ენა: "%s". მხარდაჭერილი ენები: en, ka, sv.`,
		keySessionExpired:      "თქვენი სესია ამოიწურა ან არასწორია. გთხოვთ, ხელახლა შეხვიდეთ სისტემაში.",
		keyInvalidGetData:      "არასწორი მოთხოვნა. %s მეთოდს data ვერ გადაეცემა.",
		keyRequestFailed:       "მოთხოვნა ვერ შესრულდა, სტატუსი: %d.",
	},
	SV: {
		keyMissingBaseURL:      "baseURL saknas: Du måste ange en giltig API-basadress.",
		keyInvalidBaseURL:      `Ogiltig baseURL: "%s". Det måste vara en korrekt absolut URL som börjar med "http://" eller "https://".`,
		keyInvalidProtocol:     `Ogiltigt protokoll i baseURL: "%s". Endast HTTP(S) stöds (t.ex. "https://api.example.com" eller "http://localhost:3000").`,
		keyUnsupportedLanguage: `Språket stöds inte: "%s". Språk som stöds: en, ka, sv.`,
		keySessionExpired:      "Din session har gått ut eller är ogiltig. Vänligen logga in igen.",
		keyInvalidGetData:      "Felaktigt anrop. Du kan inte skicka data med en %s-förfrågan.",
		keyRequestFailed:       "Förfrågan misslyckades med status %d.",
	},
}
