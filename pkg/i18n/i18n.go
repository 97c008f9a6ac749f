// Package i18n localizes user-facing messages. The app ships a two-way
// Serbian/English catalog: an Accept-Language primary subtag of "en"
// selects English, anything else (including a missing header) falls
// back to Serbian, matching the behavior the web client expects.
package i18n

import "strings"

const (
	LangSerbian = "sr"
	LangEnglish = "en"
)

// FromAcceptLanguage resolves the response language from an
// Accept-Language header value.
func FromAcceptLanguage(header string) string {
	primary := strings.SplitN(header, ",", 2)[0]
	primary = strings.SplitN(primary, "-", 2)[0]
	if strings.TrimSpace(strings.ToLower(primary)) == LangEnglish {
		return LangEnglish
	}
	return LangSerbian
}

var messages = map[string]map[string]string{
	"auth.required": {
		LangSerbian: "Niste autorizovani",
		LangEnglish: "You are not authorized",
	},
	"auth.invalid_token": {
		LangSerbian: "Neispravan token",
		LangEnglish: "Invalid token",
	},
	"auth.token_expired": {
		LangSerbian: "Token je istekao",
		LangEnglish: "Token has expired",
	},
	"auth.fields_required": {
		LangSerbian: "Email i lozinka su obavezni",
		LangEnglish: "Email and password are required",
	},
	"auth.email_taken": {
		LangSerbian: "Email je već registrovan",
		LangEnglish: "Email is already registered",
	},
	"auth.wrong_credentials": {
		LangSerbian: "Pogrešan email ili lozinka",
		LangEnglish: "Wrong email or password",
	},
	"recipes.ingredients_required": {
		LangSerbian: "Lista sastojaka je obavezna",
		LangEnglish: "Ingredients query param is required",
	},
	"recipes.upstream_error": {
		LangSerbian: "Greška pri preuzimanju recepata",
		LangEnglish: "Error fetching recipes",
	},
	"favorites.title_required": {
		LangSerbian: "Naziv recepta je obavezan",
		LangEnglish: "Title is required",
	},
	"favorites.duplicate": {
		LangSerbian: "Recept je već sačuvan",
		LangEnglish: "Recipe already saved",
	},
	"favorites.deleted": {
		LangSerbian: "Recept je obrisan",
		LangEnglish: "Recipe deleted",
	},
	"favorites.not_found": {
		LangSerbian: "Recept nije pronađen",
		LangEnglish: "Recipe not found",
	},
	"ingredients.name_required": {
		LangSerbian: "Naziv sastojka je obavezan",
		LangEnglish: "Ingredient name is required",
	},
	"ingredients.duplicate": {
		LangSerbian: "Sastojak već postoji",
		LangEnglish: "Ingredient already exists",
	},
	"validation.invalid_payload": {
		LangSerbian: "Neispravan zahtev",
		LangEnglish: "Invalid payload",
	},
	"server.error": {
		LangSerbian: "Greška na serveru",
		LangEnglish: "Server error",
	},
}

// T returns the message for key in lang, falling back to Serbian and
// finally to the key itself for unknown entries.
func T(lang, key string) string {
	entry, ok := messages[key]
	if !ok {
		return key
	}
	if msg, ok := entry[lang]; ok {
		return msg
	}
	return entry[LangSerbian]
}
