package entity_test

import (
	"encoding/json"

	"github.com/Luis23345432/Ingesta-Hotel2/entity"
	"github.com/Luis23345432/Ingesta-Hotel2/helper"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Entity specs", func() {
	It("Should validate every built-in entity", func() {
		for _, s := range entity.All() {
			Expect(s.Validate()).To(Succeed(), s.Name)
		}
	})

	It("Should keep job order", func() {
		Expect(entity.Names()).To(Equal([]string{"users", "services", "rooms", "reservations", "comments", "payments"}))
	})

	It("Should have the published column orders", func() {
		expected := map[string][]string{
			"users":        {"tenant_id", "user_id", "nombre", "email", "password_hash", "fecha_registro"},
			"services":     {"tenant_id", "service_id", "service_category", "service_name", "descripcion", "precio"},
			"rooms":        {"tenant_id", "room_id", "room_name", "max_persons", "room_type", "price_per_night", "description", "availability", "created_at", "image"},
			"reservations": {"tenant_id", "reservation_id", "user_id", "room_id", "service_ids", "start_date", "end_date", "status"},
			"comments":     {"tenant_id", "comment_id", "room_id", "user_id", "comment_text", "created_at"},
			"payments":     {"tenant_id", "payment_id", "reservation_id", "monto_pago", "created_at", "status"},
		}
		for name, cols := range expected {
			s, err := entity.Lookup(name)
			Expect(err).ToNot(HaveOccurred())
			Expect(s.ColumnNames()).To(Equal(cols), name)
		}
	})

	It("Should derive names from the stage and bucket", func() {
		s, err := entity.Lookup("usuarios")
		Expect(err).ToNot(HaveOccurred())
		Expect(s.Name).To(Equal("users"))
		Expect(s.SourceTable("dev")).To(Equal("dev-hotel-users"))
		Expect(s.FileName("dev")).To(Equal("dev-usuarios.csv"))
		Expect(s.ObjectKey("dev")).To(Equal("usuarios/dev-usuarios.csv"))
		Expect(s.GlueTable("dev")).To(Equal("dev-usuarios-table"))
		Expect(s.Location("s3://my-bucket")).To(Equal("s3://my-bucket/usuarios/"))
		Expect(entity.GlueDatabase("dev")).To(Equal("dev-glue-database"))
	})

	It("Should name files and tables after the entity unless a stem is set", func() {
		Expect(entity.Rooms.FileName("prod")).To(Equal("prod-rooms.csv"))
		Expect(entity.Rooms.GlueTable("prod")).To(Equal("prod-rooms-table"))
		Expect(entity.Users.FileName("prod")).To(Equal("prod-usuarios.csv"))
		Expect(entity.Users.GlueTable("prod")).To(Equal("prod-usuarios-table"))
	})

	It("Should reject unknown entities", func() {
		_, err := entity.Lookup("invoices")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("rooms"))
	})

	It("Should list catalog columns in order with their types", func() {
		tokens, err := helper.OrderedMapToTokens(entity.Payments.CatalogColumns())
		Expect(err).ToNot(HaveOccurred())
		Expect(tokens).To(Equal("tenant_id:string,payment_id:string,reservation_id:string,monto_pago:decimal,created_at:timestamp,status:string"))
	})

	It("Should find the list-flatten column", func() {
		Expect(entity.Services.FlattenColumn()).To(Equal(1))
		Expect(entity.Reservations.FlattenColumn()).To(Equal(-1))
	})

	It("Should apply a job newline policy without touching the original", func() {
		s := entity.Comments.WithNewlinePolicy(entity.NewlinesRemove)
		Expect(s.Columns[4].Newlines).To(Equal(entity.NewlinesRemove))
		Expect(entity.Comments.Columns[4].Newlines).To(Equal(entity.NewlinesDefault))
		Expect(s.Columns[0].Newlines).To(Equal(entity.NewlinesDefault))
	})

	It("Should reject invalid specs", func() {
		dup := entity.Spec{Name: "x", Table: "x", Folder: "x", Columns: []entity.Column{
			{Name: "a", Source: "a"}, {Name: "a", Source: "b"},
		}}
		Expect(dup.Validate()).ToNot(Succeed())

		twoFlatten := entity.Spec{Name: "x", Table: "x", Folder: "x", Columns: []entity.Column{
			{Name: "a", Source: "a", Rule: entity.RuleListFlatten},
			{Name: "b", Source: "b", Rule: entity.RuleListFlatten},
		}}
		Expect(twoFlatten.Validate()).ToNot(Succeed())

		Expect(entity.Spec{Name: "x", Table: "x", Folder: "x"}.Validate()).ToNot(Succeed())
	})

	It("Should marshal rules and policies as text", func() {
		b, err := json.Marshal(entity.Reservations.Columns[4])
		Expect(err).ToNot(HaveOccurred())
		Expect(string(b)).To(ContainSubstring(`"rule":"list-join"`))

		var col entity.Column
		Expect(json.Unmarshal([]byte(`{"name":"t","source":"t","rule":"strip-newlines","newlines":"remove"}`), &col)).To(Succeed())
		Expect(col.Rule).To(Equal(entity.RuleStripNewlines))
		Expect(col.Newlines).To(Equal(entity.NewlinesRemove))
	})

	It("Should parse newline policies", func() {
		p, err := entity.ParseNewlinePolicy(" Space ")
		Expect(err).ToNot(HaveOccurred())
		Expect(p).To(Equal(entity.NewlinesSpace))
		p, err = entity.ParseNewlinePolicy("")
		Expect(err).ToNot(HaveOccurred())
		Expect(p).To(Equal(entity.NewlinesDefault))
		_, err = entity.ParseNewlinePolicy("tab")
		Expect(err).To(HaveOccurred())
	})
})
