package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/urbanfarm-dashboard/internal/application/form"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

func validFarm() form.FarmForm {
	return form.FarmForm{Name: "Azotea Centro", Location: "Calle 10 #4-20", Size: "250.5", FarmType: entity.FarmTypeRooftop}
}

func TestSubmit_NombreCortoNoEnvia(t *testing.T) {
	f := validFarm()
	f.Name = "A"
	called := false

	err := form.Submit[entity.Farm](context.Background(), &form.Guard{}, f, func(context.Context, entity.Farm) error {
		called = true
		return nil
	})

	assert.False(t, called, "un formulario inválido nunca llega a la API")
	var fe form.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "debe tener al menos 2 caracteres", fe["name"])
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_ConvierteTipos(t *testing.T) {
	var got entity.Farm
	err := form.Submit[entity.Farm](context.Background(), &form.Guard{}, validFarm(), func(_ context.Context, farm entity.Farm) error {
		got = farm
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Azotea Centro", got.Name)
	assert.True(t, got.SizeSqM.Equal(decimal.RequireFromString("250.5")))
}

func TestSubmit_GuardEvitaDobleEnvio(t *testing.T) {
	g := &form.Guard{}
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- form.Submit[entity.Farm](context.Background(), g, validFarm(), func(context.Context, entity.Farm) error {
			close(started)
			<-release
			return errors.New("fallo del backend")
		})
	}()
	<-started
	assert.True(t, g.InFlight())

	err := form.Submit[entity.Farm](context.Background(), g, validFarm(), func(context.Context, entity.Farm) error {
		t.Fatal("el segundo envío no debe ejecutarse")
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrSubmissionInFlight)

	close(release)
	assert.EqualError(t, <-done, "fallo del backend")
	assert.False(t, g.InFlight(), "la bandera se libera aunque el envío falle")
}

func TestValidate_Mensajes(t *testing.T) {
	err := form.Validate(form.ClientForm{Name: "Restaurante Verde", Email: "no-es-correo", ClientType: "OTRO"})
	var fe form.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "correo electrónico inválido", fe["email"])
	assert.Contains(t, fe["clientType"], "RESTAURANT")
	assert.NotContains(t, fe, "name")
}

func TestHarvestForm_Payload(t *testing.T) {
	f := form.HarvestForm{CropID: "3", FarmID: "1", InventoryID: "9", HarvestDate: "2024-05-10", Yield: "12.5", QualityRating: "4"}
	require.NoError(t, form.Validate(f))
	h, err := f.Payload()
	require.NoError(t, err)
	assert.Equal(t, int64(3), h.CropID)
	require.NotNil(t, h.InventoryID)
	assert.Equal(t, int64(9), *h.InventoryID)
	assert.True(t, h.HarvestDate.Equal(entity.NewDate(2024, 5, 10).Time))
	assert.Equal(t, 4, h.QualityRating)

	f.QualityRating = "7"
	f.Yield = "0"
	_, err = f.Payload()
	var fe form.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "qualityRating")
	assert.Contains(t, fe, "yield")
}

func TestCropForm_Fechas(t *testing.T) {
	f := form.CropForm{Name: "Lechuga", FarmID: "1", PlantingDate: "2024-13-01", Area: "10"}
	err := form.Validate(f)
	var fe form.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "fecha inválida (AAAA-MM-DD)", fe["plantingDate"])

	f.PlantingDate = "2024-03-01"
	f.ExpectedHarvestDate = "2024-02-01"
	require.NoError(t, form.Validate(f))
	_, err = f.Payload()
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "expectedHarvestDate")
}

func TestOrderForm_EstadoPorDefecto(t *testing.T) {
	o, err := form.OrderForm{ClientID: "1", InventoryID: "2", Quantity: "5", OrderDate: "2024-06-01"}.Payload()
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, o.Status)
}

func TestAuthForms(t *testing.T) {
	assert.NoError(t, form.Validate(form.LoginForm{Email: "admin@urbanfarm.com", Password: "password123"}))

	err := form.Validate(form.RegisterForm{Username: "ana", Email: "ana@granja.co", Password: "secreta123", ConfirmPassword: "otra12345"})
	var fe form.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "no coincide", fe["confirmPassword"])

	assert.Error(t, form.Validate(form.TwoFactorForm{Code: "12345"}))
	assert.Error(t, form.Validate(form.TwoFactorForm{Code: "12a456"}))
	assert.NoError(t, form.Validate(form.TwoFactorForm{Code: "123456"}))
}

func TestFieldErrors_ErrorOrdenado(t *testing.T) {
	fe := form.FieldErrors{"b": "y", "a": "x"}
	assert.Equal(t, "validación: a: x; b: y", fe.Error())
}

func TestRecordHarvestForm_Rango(t *testing.T) {
	_, err := form.RecordHarvestForm{Yield: "0", QualityRating: "7"}.Payload()
	var fe form.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "debe ser mayor que cero", fe["yield"])
	assert.Contains(t, fe["qualityRating"], "fuera de rango")

	rec, err := form.RecordHarvestForm{Yield: "3.25", QualityRating: "4"}.Payload()
	require.NoError(t, err)
	assert.Equal(t, "3.25", rec.Yield.String())
	assert.Equal(t, 4, rec.QualityRating)
}

func TestIntakeForm_RequiereInventario(t *testing.T) {
	f := form.IntakeForm{HarvestForm: form.HarvestForm{
		CropID: "3", FarmID: "1", HarvestDate: "2024-05-10", Yield: "12", QualityRating: "5",
	}}
	require.NoError(t, form.Validate(f))
	_, err := f.Payload()
	var fe form.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "identificador inválido", fe["inventoryId"])

	f.InventoryID = "9"
	in, err := f.Payload()
	require.NoError(t, err)
	assert.Equal(t, int64(9), in.InventoryID)
	require.NotNil(t, in.Harvest.InventoryID)
	assert.Equal(t, int64(9), *in.Harvest.InventoryID)
}

func TestStatusForm(t *testing.T) {
	var fe form.FieldErrors
	require.ErrorAs(t, form.Validate(form.StatusForm{Status: "LOST"}), &fe)
	assert.Contains(t, fe["status"], "debe ser uno de")
	require.NoError(t, form.Validate(form.StatusForm{Status: "SHIPPED"}))
}
