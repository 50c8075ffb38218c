package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate es el formato canónico de fecha en todo el dominio.
const ISODate = "2006-01-02"

var (
	isoPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slashPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)
)

// ToISODate convierte una fecha de entrada a forma ISO YYYY-MM-DD.
//
// Reglas (parser heurístico, no validador):
//   - vacío            → fecha actual del sistema
//   - YYYY-MM-DD       → sin cambios
//   - M/D/YYYY o M/D/YY → ISO con ceros a la izquierda; años de 2 dígitos
//     se completan con prefijo "20"
//   - cualquier otro formato → fecha actual del sistema
//
// Limitación conocida: una fecha ambigua o malformada se convierte en "hoy"
// sin avisar; los datos de origen legacy llegan así desde los exports viejos.
func ToISODate(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Now().Format(ISODate)
	}
	if isoPattern.MatchString(v) {
		return v
	}
	if m := slashPattern.FindStringSubmatch(v); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		return fmt.Sprintf("%s-%02d-%02d", year, month, day)
	}
	return time.Now().Format(ISODate)
}

// FormatDate transforma una fecha ISO a la forma de display MM/DD/YYYY.
// Entrada vacía produce cadena vacía.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	parts := strings.SplitN(iso, "-", 3)
	if len(parts) != 3 {
		return iso
	}
	return fmt.Sprintf("%s/%s/%s", pad2(parts[1]), pad2(parts[2]), parts[0])
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
