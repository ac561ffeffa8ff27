package storage

// Schema is the JSON Schema (Draft 2020-12) for the JSON snapshot
// file. Loads are validated against it before decoding; `rolo schema`
// prints it for external tooling.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/rolo/snapshot.schema.json",
  "title": "Rolo Address Book Snapshot",
  "description": "Persisted state of a rolo contact book",
  "type": "object",
  "required": ["version", "contacts"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Snapshot layout version"
    },
    "contacts": {
      "type": "array",
      "items": { "$ref": "#/$defs/Contact" }
    }
  },
  "$defs": {
    "Contact": {
      "type": "object",
      "required": ["name", "phones"],
      "properties": {
        "name": {
          "type": "string",
          "minLength": 1,
          "description": "Contact name, also the book key"
        },
        "phones": {
          "type": "array",
          "items": {
            "type": "string",
            "pattern": "^[0-9]{10}$"
          },
          "description": "Phone numbers in insertion order"
        },
        "birthday": {
          "type": "string",
          "pattern": "^[0-9]{2}\\.[0-9]{2}\\.[0-9]{4}$",
          "description": "Birthday as DD.MM.YYYY, absent when unset"
        }
      }
    }
  }
}`
