package internal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const dateLayout = "2006-01-02"

// Date is a calendar day, encoded as YYYY-MM-DD on the wire.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func ParseDate(s string) (Date, error) {
	// the API sometimes answers with a full timestamp for date columns
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Timestamp is an instant on the wire. The API may send it with or without
// a zone offset; zoneless values are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t}
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type ActivityType string

const (
	ActivityRest      ActivityType = "PAUSA"
	ActivityExercise  ActivityType = "EXERCICIO"
	ActivityPosture   ActivityType = "POSTURA"
	ActivityHydration ActivityType = "HIDRATACAO"
)

var ActivityTypes = []ActivityType{ActivityRest, ActivityExercise, ActivityPosture, ActivityHydration}

func (a ActivityType) Valid() bool {
	for _, t := range ActivityTypes {
		if a == t {
			return true
		}
	}
	return false
}

// ParseActivityType accepts either the wire value or the English name.
func ParseActivityType(s string) (ActivityType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PAUSA", "REST":
		return ActivityRest, nil
	case "EXERCICIO", "EXERCISE":
		return ActivityExercise, nil
	case "POSTURA", "POSTURE":
		return ActivityPosture, nil
	case "HIDRATACAO", "HYDRATION":
		return ActivityHydration, nil
	}
	return "", fmt.Errorf("unknown activity type %q", s)
}

type AlertType string

const (
	AlertHealth   AlertType = "SAUDE"
	AlertSleep    AlertType = "SONO"
	AlertActivity AlertType = "ATIVIDADE"
	AlertRisk     AlertType = "RISCO"
)

type Severity string

const (
	SeverityLow    Severity = "BAIXA"
	SeverityMedium Severity = "MEDIA"
	SeverityHigh   Severity = "ALTA"
)

type SelfAssessment struct {
	ID           int64  `json:"id,omitempty"`
	UserID       int64  `json:"usuarioId,omitempty"`
	Date         Date   `json:"data"`
	StressLevel  int    `json:"estresse"`
	Mood         int    `json:"humor"`
	Energy       int    `json:"energia"`
	SleepQuality int    `json:"qualidadeSono"`
	Comments     string `json:"comentarios,omitempty"`
}

// SelfAssessmentPatch carries only the fields being changed.
type SelfAssessmentPatch struct {
	Date         *Date   `json:"data,omitempty"`
	StressLevel  *int    `json:"estresse,omitempty"`
	Mood         *int    `json:"humor,omitempty"`
	Energy       *int    `json:"energia,omitempty"`
	SleepQuality *int    `json:"qualidadeSono,omitempty"`
	Comments     *string `json:"comentarios,omitempty"`
}

type Recommendation struct {
	ID           int64        `json:"id,omitempty"`
	UserID       int64        `json:"usuarioId,omitempty"`
	ActivityType ActivityType `json:"tipoAtividade"`
	Title        string       `json:"titulo"`
	Description  string       `json:"descricao"`
	CreatedAt    Date         `json:"createdAt"`
	Consumed     bool         `json:"consumido"`
}

type RecommendationPatch struct {
	ActivityType *ActivityType `json:"tipoAtividade,omitempty"`
	Title        *string       `json:"titulo,omitempty"`
	Description  *string       `json:"descricao,omitempty"`
	CreatedAt    *Date         `json:"createdAt,omitempty"`
	Consumed     *bool         `json:"consumido,omitempty"`
}

type Alert struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"usuarioId"`
	Type        AlertType `json:"tipoAlerta"`
	Description string    `json:"descricao"`
	Severity    Severity  `json:"severidade"`
	Timestamp   Timestamp `json:"data"`
	Resolved    bool      `json:"resolvido"`
}

type WearableReading struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"usuarioId"`
	Timestamp       Timestamp  `json:"data"`
	AvgHeartRate    float64    `json:"batimentosMedia"`
	Steps           int        `json:"passos"`
	TotalSleepHours float64    `json:"sonoTotal"`
	DeviceData      DeviceData `json:"rawData"`
}

// DeviceData is the device payload attached to a wearable reading. Only the
// stress score is interpreted; the rest is kept verbatim.
type DeviceData struct {
	StressScore *float64
	Raw         json.RawMessage
}

func (d DeviceData) MarshalJSON() ([]byte, error) {
	if len(d.Raw) > 0 {
		return d.Raw, nil
	}
	if d.StressScore != nil {
		return json.Marshal(map[string]float64{"stress_score": *d.StressScore})
	}
	return []byte("null"), nil
}

func (d *DeviceData) UnmarshalJSON(b []byte) error {
	*d = DeviceData{}
	if !gjson.ValidBytes(b) {
		return fmt.Errorf("invalid device data")
	}
	res := gjson.ParseBytes(b)
	if res.Type == gjson.Null {
		return nil
	}
	d.Raw = append(json.RawMessage(nil), b...)
	if score := res.Get("stress_score"); score.Type == gjson.Number {
		v := score.Float()
		d.StressScore = &v
	}
	return nil
}

type Session struct {
	Token    string
	Username string
}

func (s Session) Active() bool { return s.Token != "" }

type User struct {
	ID         int64     `json:"id"`
	Name       string    `json:"nome"`
	Email      string    `json:"email"`
	Role       string    `json:"cargo"`
	Department string    `json:"departamento"`
	CreatedAt  Timestamp `json:"createdAt"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Address struct {
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	PostalCode   string `json:"cep"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento,omitempty"`
	City         string `json:"cidade"`
	State        string `json:"uf"`
}

type CreateUserRequest struct {
	FirstName   string      `json:"nome"`
	LastName    string      `json:"sobrenome"`
	CPF         string      `json:"cpf"`
	Sex         string      `json:"sexo"` // MASCULINO or FEMININO
	Email       string      `json:"email"`
	Phone       string      `json:"telefone"`
	Credentials Credentials `json:"credenciais"`
	Role        string      `json:"cargo"`
	Department  string      `json:"departamento"`
	BirthDate   string      `json:"dataNascimento"` // YYYY-MM-DD
	Address     Address     `json:"endereco"`
}

// PostalAddress is the normalized result of a CEP lookup.
type PostalAddress struct {
	Code         string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}
