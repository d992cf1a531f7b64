package catalog

// Builtin returns the demo registry: five related subscription-business
// datasets matching the seeded storage schema.
func Builtin() Registry {
	return New(
		Dataset{
			Name:  "subscribers",
			Table: "subscribers",
			Columns: []Column{
				{Name: "user_id", Kind: Categorical, Identifier: true, Description: "Unique user identifier."},
				{Name: "region", Kind: Categorical, Description: "Geographic region for the user."},
				{Name: "plan_type", Kind: Categorical, Description: "Subscription plan type."},
				{Name: "join_date", Kind: Temporal, Description: "Date the user joined."},
				{Name: "status", Kind: Categorical, Description: "Current lifecycle status."},
				{Name: "monthly_spend", Kind: Numeric, Aggregatable: true, Description: "Average monthly revenue."},
			},
			Related: []string{"payments", "logins"},
		},
		Dataset{
			Name:  "payments",
			Table: "payments",
			Columns: []Column{
				{Name: "payment_id", Kind: Categorical, Identifier: true},
				{Name: "user_id", Kind: Categorical, Identifier: true},
				{Name: "amount", Kind: Numeric, Aggregatable: true, Description: "Net payment amount in USD."},
				{Name: "currency", Kind: Categorical},
				{Name: "payment_date", Kind: Temporal},
				{Name: "status", Kind: Categorical},
			},
			Related: []string{"subscribers"},
		},
		Dataset{
			Name:  "logins",
			Table: "logins",
			Columns: []Column{
				{Name: "user_id", Kind: Categorical, Identifier: true},
				{Name: "login_date", Kind: Temporal},
				{Name: "login_count", Kind: Numeric, Aggregatable: true},
				{Name: "device_type", Kind: Categorical},
				{Name: "region", Kind: Categorical},
				{Name: "plan_type", Kind: Categorical},
			},
			Related: []string{"subscribers"},
		},
		Dataset{
			Name:  "tickets",
			Table: "tickets",
			Columns: []Column{
				{Name: "ticket_id", Kind: Categorical, Identifier: true},
				{Name: "user_id", Kind: Categorical, Identifier: true},
				{Name: "opened_at", Kind: Temporal},
				{Name: "resolved_at", Kind: Temporal},
				{Name: "category", Kind: Categorical},
				{Name: "severity", Kind: Categorical},
				{Name: "status", Kind: Categorical},
				{Name: "response_time_hours", Kind: Numeric, Aggregatable: true},
			},
			Related: []string{"subscribers", "business_units"},
		},
		Dataset{
			Name:  "business_units",
			Table: "business_units",
			Columns: []Column{
				{Name: "unit_id", Kind: Categorical, Identifier: true},
				{Name: "unit_name", Kind: Categorical},
				{Name: "region", Kind: Categorical},
				{Name: "revenue", Kind: Numeric, Aggregatable: true},
				{Name: "headcount", Kind: Numeric, Aggregatable: true},
			},
			Related: []string{"tickets", "payments"},
		},
	)
}
