package content

var blogPosts = []Post{
	{
		ID:      "1",
		Slug:    "transformacion-digital-en-el-sector-petrolero",
		Title:   "Transformación digital en el sector petrolero",
		Excerpt: "Cómo la analítica de datos, la automatización y los gemelos digitales están cambiando la forma de operar campos maduros.",
		Content: `# Transformación digital en el sector petrolero

La industria de hidrocarburos atraviesa una transición acelerada hacia operaciones basadas en datos.

## Gemelos digitales

Un gemelo digital replica en tiempo real el comportamiento de una planta o un pozo. Permite simular escenarios antes de intervenir en campo.

## Beneficios medibles

- Reducción de paradas no programadas
- Mejor planificación de mantenimiento
- Decisiones basadas en datos de producción en vivo

### Próximos pasos

Empezar por un piloto acotado y escalar con indicadores claros.`,
		Author:   Author{Name: "Ing. Carlos Mendoza", Role: "Director de Tecnología"},
		Date:     "2024-03-15",
		ReadTime: "8 min",
		Category: Technology,
		IconName: "Cpu",
	},
	{
		ID:      "2",
		Slug:    "seguridad-operacional-cero-incidentes",
		Title:   "Seguridad operacional: el camino hacia cero incidentes",
		Excerpt: "Las prácticas de gestión de riesgos que nos permitieron superar un millón de horas hombre sin accidentes incapacitantes.",
		Content: `# Seguridad operacional

La seguridad no es un departamento: es una forma de trabajar.

## Pilares del programa

- Análisis de trabajo seguro antes de cada tarea
- Permisos de trabajo digitales
- Derecho a detener cualquier operación insegura

## Resultados

Más de un millón de horas hombre sin incidentes incapacitantes en operaciones de campo.`,
		Author:   Author{Name: "Ing. Ana Rodríguez", Role: "Gerente HSE"},
		Date:     "2024-03-08",
		ReadTime: "6 min",
		Category: Safety,
		IconName: "Shield",
	},
	{
		ID:      "3",
		Slug:    "mantenimiento-predictivo-con-sensores-iot",
		Title:   "Mantenimiento predictivo con sensores IoT",
		Excerpt: "Vibración, temperatura y presión en tiempo real para anticipar fallas en bombas y compresores.",
		Content: `# Mantenimiento predictivo

Los sensores IoT instalados en equipos rotativos envían datos cada pocos segundos.

## Qué medimos

- Vibración en rodamientos
- Temperatura de sellos
- Presión de descarga

## Cómo actuamos

Los modelos detectan desviaciones y generan órdenes de trabajo antes de que ocurra la falla.`,
		Author:   Author{Name: "Ing. Carlos Mendoza", Role: "Director de Tecnología"},
		Date:     "2024-02-28",
		ReadTime: "7 min",
		Category: Technology,
		IconName: "Activity",
	},
	{
		ID:      "4",
		Slug:    "reduccion-de-emisiones-en-operaciones-de-campo",
		Title:   "Reducción de emisiones en operaciones de campo",
		Excerpt: "Detección de fugas de metano, electrificación de equipos y quema cero de rutina.",
		Content: `# Reducción de emisiones

Nuestro compromiso ambiental se traduce en metas verificables.

## Iniciativas

- Programas de detección y reparación de fugas
- Reemplazo de motores a gas por equipos eléctricos
- Recuperación de gas de venteo

## Metas

Reducir un 30% la intensidad de emisiones hacia 2030.`,
		Author:   Author{Name: "Lic. María Fernández", Role: "Coordinadora de Sostenibilidad"},
		Date:     "2024-02-20",
		ReadTime: "5 min",
		Category: Sustainability,
		IconName: "Leaf",
	},
	{
		ID:      "5",
		Slug:    "optimizacion-de-pozos-maduros",
		Title:   "Optimización de pozos maduros",
		Excerpt: "Sistemas de levantamiento artificial y estimulación para extender la vida productiva de un campo.",
		Content: `# Optimización de pozos maduros

Un campo maduro todavía puede aportar producción rentable.

## Herramientas

- Bombeo mecánico con variadores de velocidad
- Bombeo electrosumergible
- Estimulación matricial

## Caso de estudio

Un incremento del 18% en producción tras rediseñar el sistema de levantamiento en doce pozos.`,
		Author:   Author{Name: "Ing. Jorge Salinas", Role: "Gerente de Operaciones"},
		Date:     "2024-02-10",
		ReadTime: "9 min",
		Category: Operations,
		IconName: "Droplet",
	},
	{
		ID:      "6",
		Slug:    "tendencias-del-mercado-energetico-2024",
		Title:   "Tendencias del mercado energético 2024",
		Excerpt: "Precios, inversión en exploración y el rol del gas natural en la transición energética.",
		Content: `# Tendencias del mercado energético

El año presenta un escenario de precios estables y una inversión selectiva.

## Claves del año

- Disciplina de capital en exploración
- Crecimiento del gas natural licuado
- Integración de energías renovables en operaciones`,
		Author:   Author{Name: "Lic. Roberto Díaz", Role: "Analista de Mercado"},
		Date:     "2024-01-30",
		ReadTime: "6 min",
		Category: Industry,
		IconName: "TrendingUp",
	},
	{
		ID:      "7",
		Slug:    "cultura-de-seguridad-en-equipos-de-campo",
		Title:   "Cultura de seguridad en equipos de campo",
		Excerpt: "Liderazgo visible, observaciones preventivas y aprendizaje de eventos para equipos que trabajan lejos de la base.",
		Content: `# Cultura de seguridad

Los equipos de campo trabajan en condiciones cambiantes.

## Liderazgo visible

Los supervisores recorren las locaciones y conversan con cada cuadrilla.

## Aprendizaje

- Reporte de casi accidentes sin culpables
- Lecciones aprendidas compartidas cada semana`,
		Author:   Author{Name: "Ing. Ana Rodríguez", Role: "Gerente HSE"},
		Date:     "2024-01-18",
		ReadTime: "5 min",
		Category: Safety,
		IconName: "HardHat",
	},
}
